// Package extract turns free-form CV and job-description text into the
// structured documents the matching engine consumes, using a Gemini model
// for the heavy lifting.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lsanchezo/cv-match/internal/logger"
	"github.com/lsanchezo/cv-match/internal/profile"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt_profile.md
var profilePromptTemplate string

//go:embed prompt_requirements.md
var requirementsPromptTemplate string

const defaultMaxLogLength = 200

// Extractor drives structured extraction through a content generator.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	validate  *validator.Validate
}

func NewExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
		validate:  validator.New(),
	}
}

// ExtractProfile analyzes raw CV text and returns the candidate profile.
func (e *Extractor) ExtractProfile(ctx context.Context, cvText string) (*profile.CandidateProfile, error) {
	cvText = strings.TrimSpace(cvText)
	if cvText == "" {
		return nil, errors.New("cv text must not be empty")
	}

	prompt := buildPrompt(profilePromptTemplate, "{{CV_TEXT}}", cvText)

	raw, err := e.generate(ctx, "profile", prompt)
	if err != nil {
		return nil, err
	}

	var p profile.CandidateProfile
	if err := decodeDocument(raw, &p); err != nil {
		return nil, fmt.Errorf("profile extraction: %w", err)
	}

	if err := e.validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("profile extraction produced out-of-range values: %w", err)
	}

	if p.IsEmpty() {
		return nil, errors.New("profile extraction produced an empty document")
	}

	return &p, nil
}

// ExtractRequirements analyzes a job description and returns the structured
// requirements document.
func (e *Extractor) ExtractRequirements(ctx context.Context, jobText string) (*profile.JobRequirements, error) {
	jobText = strings.TrimSpace(jobText)
	if jobText == "" {
		return nil, errors.New("job description must not be empty")
	}

	prompt := buildPrompt(requirementsPromptTemplate, "{{JOB_TEXT}}", jobText)

	raw, err := e.generate(ctx, "requirements", prompt)
	if err != nil {
		return nil, err
	}

	var req profile.JobRequirements
	if err := decodeDocument(raw, &req); err != nil {
		return nil, fmt.Errorf("requirements extraction: %w", err)
	}

	if err := e.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("requirements extraction produced out-of-range values: %w", err)
	}

	if req.IsEmpty() {
		return nil, errors.New("requirements extraction produced an empty document")
	}

	return &req, nil
}

func (e *Extractor) generate(ctx context.Context, kind, prompt string) (string, error) {
	e.logger.Debug("model extraction request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	e.logger.Debug("model extraction response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	return raw, nil
}

func buildPrompt(template, placeholder, text string) string {
	if strings.TrimSpace(template) == "" {
		template = "Input:\n" + placeholder + "\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, placeholder, text)
}
