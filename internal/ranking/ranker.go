// Package ranking scores a directory of candidate documents against one job
// requirement set and orders the results.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lsanchezo/cv-match/internal/matching"
	"github.com/lsanchezo/cv-match/internal/pdftext"
	"github.com/lsanchezo/cv-match/internal/profile"
)

const defaultConcurrency = 4

// ErrNoDocuments is returned when the directory holds no supported files.
var ErrNoDocuments = errors.New("no supported documents found")

// Result is the outcome for a single document. Either Report or Err is set.
type Result struct {
	Path   string
	Report *matching.MatchReport
	Err    error
}

type profileExtractor interface {
	ExtractProfile(ctx context.Context, cvText string) (*profile.CandidateProfile, error)
}

// Ranker scores candidate documents concurrently.
type Ranker struct {
	extractor   profileExtractor
	engine      *matching.Engine
	logger      *zap.Logger
	concurrency int

	// readText is swapped out in tests.
	readText func(path string) (string, error)
}

func NewRanker(extractor profileExtractor, engine *matching.Engine, log *zap.Logger, concurrency int) *Ranker {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Ranker{
		extractor:   extractor,
		engine:      engine,
		logger:      log,
		concurrency: concurrency,
		readText:    pdftext.Extract,
	}
}

// RankDirectory scores every supported document under dir against the
// requirements and returns results ordered best first. Per-document failures
// land in the result's Err field; they sort after all scored candidates.
func (r *Ranker) RankDirectory(ctx context.Context, dir string, req *profile.JobRequirements) ([]Result, error) {
	paths, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}

	r.logger.Info("ranking documents",
		zap.String("dir", dir),
		zap.Int("count", len(paths)),
		zap.Int("concurrency", r.concurrency),
	)

	results := make([]Result, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, path := range paths {
		group.Go(func() error {
			results[i] = r.rankOne(groupCtx, path, req)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sortResults(results)
	return results, nil
}

func (r *Ranker) rankOne(ctx context.Context, path string, req *profile.JobRequirements) Result {
	text, err := r.readText(path)
	if err != nil {
		r.logger.Warn("document extraction failed", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Err: err}
	}

	p, err := r.extractor.ExtractProfile(ctx, text)
	if err != nil {
		r.logger.Warn("profile extraction failed", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Err: err}
	}

	report, err := r.engine.BuildReport(p, req)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	r.logger.Debug("document scored",
		zap.String("path", path),
		zap.Float64("overall_score", report.OverallScore),
	)

	return Result{Path: path, Report: report}
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !pdftext.Supported(name) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	sort.Strings(paths)
	return paths, nil
}

// sortResults orders scored candidates by overall score descending, ties
// broken by candidate name then path. Failed documents go last, ordered by
// path so reruns stay stable.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.Err != nil {
			return a.Path < b.Path
		}

		if a.Report.OverallScore != b.Report.OverallScore {
			return a.Report.OverallScore > b.Report.OverallScore
		}
		if a.Report.CandidateName != b.Report.CandidateName {
			return a.Report.CandidateName < b.Report.CandidateName
		}
		return a.Path < b.Path
	})
}
