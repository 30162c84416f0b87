package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lsanchezo/cv-match/internal/pdftext"
	"github.com/lsanchezo/cv-match/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract and display the structured profile from a CV",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("cv", "c", "", "path to the CV document (pdf or txt)")
	analyzeCmd.Flags().StringP("output", "o", "", "also write the profile as JSON to this file")

	analyzeCmd.MarkFlagRequired("cv")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	cvPath := stringFlag(cmd, "cv")
	cvText, err := pdftext.Extract(cvPath)
	if err != nil {
		logger.Fatal("reading cv document", zap.Error(err))
	}

	extractor, err := newExtractor(ctx, config, logger)
	if err != nil {
		logger.Fatal("building extractor",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY or gemini.api-key-file in the configuration file"),
		)
	}

	logger.Info("extracting candidate profile", zap.String("cv", cvPath))
	profile, err := extractor.ExtractProfile(ctx, cvText)
	if err != nil {
		logger.Fatal("extracting candidate profile", zap.Error(err))
	}

	render.Profile(os.Stdout, profile)

	if output := stringFlag(cmd, "output"); output != "" {
		f, err := os.Create(output)
		if err != nil {
			logger.Fatal("creating output file", zap.Error(err))
		}
		defer f.Close()

		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(profile); err != nil {
			logger.Fatal("writing profile", zap.Error(err))
		}

		fmt.Fprintf(os.Stderr, "profile written to %s\n", output)
	}
}
