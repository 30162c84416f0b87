package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lsanchezo/cv-match/internal/extract"
	"github.com/lsanchezo/cv-match/internal/logger"
	"github.com/lsanchezo/cv-match/internal/matching"
	"github.com/lsanchezo/cv-match/internal/secrets"
)

const (
	app = "cv-match"

	geminiAPIKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	Gemini  *GeminiConfig     `mapstructure:"gemini"`
	Weights *matching.Weights `mapstructure:"weights"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-match scores candidate CVs against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env is optional; flags and the config file still work without it.
	_ = godotenv.Load()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-match.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless one was named explicitly.
		if cfgFile != "" {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Gemini == nil {
		config.Gemini = &GeminiConfig{}
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// newExtractor builds the model-backed extractor from the configuration.
func newExtractor(ctx context.Context, config *Config, l *zap.Logger) (*extract.Extractor, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.Gemini.APIKey,
		File:  config.Gemini.APIKeyFile,
		Env:   geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, err
	}

	generator, err := extract.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries)
	if err != nil {
		return nil, err
	}

	extractorLogger := l.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return extract.NewExtractor(generator, extractorLogger, config.Gemini.MaxLogLength), nil
}

func newEngine(config *Config) *matching.Engine {
	weights := matching.Weights{}
	if config.Weights != nil {
		weights = *config.Weights
	}
	return matching.NewEngine(weights)
}

func stringFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}
