package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lsanchezo/cv-match/internal/ranking"
	"github.com/lsanchezo/cv-match/internal/render"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every CV in a directory against one job description and rank them",
	Run: func(cmd *cobra.Command, _ []string) {
		batch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("dir", "", "directory with CV documents (pdf or txt)")
	batchCmd.Flags().String("job-file", "", "path to the job description document (pdf or txt)")
	batchCmd.Flags().String("job-text", "", "inline job description text")
	batchCmd.Flags().Int("concurrency", 0, "parallel documents to process (default 4)")
	batchCmd.Flags().String("json-out", "", "write the full ranked results as JSON to this file")
	batchCmd.Flags().String("xlsx-out", "", "write the ranked results as an Excel workbook to this file")

	batchCmd.MarkFlagRequired("dir")
}

func batch(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting "+app, zap.String("version", version))

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

	logger.Info("extracting job requirements")
	requirements, err := extractor.ExtractRequirements(ctx, jobText)
	if err != nil {
		logger.Fatal("extracting job requirements", zap.Error(err))
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	ranker := ranking.NewRanker(extractor, newEngine(config), logger, concurrency)

	results, err := ranker.RankDirectory(ctx, stringFlag(cmd, "dir"), requirements)
	if err != nil {
		logger.Fatal("ranking documents", zap.Error(err))
	}

	rows := make([]render.RankingRow, 0, len(results))
	for i, result := range results {
		row := render.RankingRow{
			Rank: i + 1,
			File: filepath.Base(result.Path),
			Err:  result.Err,
		}
		if result.Report != nil {
			row.Candidate = result.Report.CandidateName
			row.Score = result.Report.OverallScore
		}
		rows = append(rows, row)
	}
	render.Ranking(os.Stdout, rows)

	if jsonOut := stringFlag(cmd, "json-out"); jsonOut != "" {
		if err := ranking.DumpJSON(jsonOut, results); err != nil {
			logger.Fatal("writing json results", zap.Error(err))
		}
		logger.Info("results saved", zap.String("filename", jsonOut))
	}

	if xlsxOut := stringFlag(cmd, "xlsx-out"); xlsxOut != "" {
		if err := ranking.ExportXLSX(xlsxOut, requirements.JobTitle, results); err != nil {
			logger.Fatal("writing excel results", zap.Error(err))
		}
		logger.Info("workbook saved", zap.String("filename", xlsxOut))
	}
}
