package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lsanchezo/cv-match/internal/matching"
	"github.com/lsanchezo/cv-match/internal/pdftext"
	"github.com/lsanchezo/cv-match/internal/render"
)

const (
	PromptExit       = "Exit"
	PromptShowJSON   = "Show report as JSON"
	PromptSaveReport = "Save report to file"

	defaultReportFile = "cv-match-report.json"
)

var errExit = errors.New("exit requested")

var reportPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExit, PromptShowJSON, PromptSaveReport},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one CV against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("cv", "c", "", "path to the CV document (pdf or txt)")
	matchCmd.Flags().String("job-file", "", "path to the job description document (pdf or txt)")
	matchCmd.Flags().String("job-text", "", "inline job description text")
	matchCmd.Flags().StringP("output", "o", defaultReportFile, "file for the saved JSON report")
	matchCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without prompting")

	matchCmd.MarkFlagRequired("cv")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting "+app, zap.String("version", version))

	cvPath := stringFlag(cmd, "cv")
	cvText, err := pdftext.Extract(cvPath)
	if err != nil {
		logger.Fatal("reading cv document", zap.Error(err))
	}

	jobText, err := resolveJobText(cmd)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
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

	logger.Info("extracting job requirements")
	requirements, err := extractor.ExtractRequirements(ctx, jobText)
	if err != nil {
		logger.Fatal("extracting job requirements", zap.Error(err))
	}

	report, err := newEngine(config).BuildReport(profile, requirements)
	if err != nil {
		logger.Fatal("building match report", zap.Error(err))
	}

	render.Report(os.Stdout, report)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		output := stringFlag(cmd, "output")
		if err := saveReport(report, output); err != nil {
			logger.Fatal("saving report", zap.Error(err))
		}
		logger.Info("report saved", zap.String("filename", output))
		return
	}

	for {
		_, action, err := reportPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleReportAction(action, report, stringFlag(cmd, "output"), logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleReportAction(action string, report *matching.MatchReport, output string, logger *zap.Logger) error {
	switch action {
	case PromptExit:
		return errExit
	case PromptShowJSON:
		pretty, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	case PromptSaveReport:
		if err := saveReport(report, output); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		logger.Info("report saved", zap.String("filename", output))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func saveReport(report *matching.MatchReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// resolveJobText returns the job description from --job-file or --job-text,
// requiring exactly one of the two.
func resolveJobText(cmd *cobra.Command) (string, error) {
	jobFile := stringFlag(cmd, "job-file")
	jobText := stringFlag(cmd, "job-text")

	switch {
	case jobFile != "" && jobText != "":
		return "", errors.New("set either --job-file or --job-text, not both")
	case jobFile != "":
		return pdftext.Extract(jobFile)
	case strings.TrimSpace(jobText) != "":
		return jobText, nil
	default:
		return "", errors.New("a job description is required: set --job-file or --job-text")
	}
}
