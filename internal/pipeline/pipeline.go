// Package pipeline runs one resume scoring pass from file to report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
	"github.com/Glen4687/Resume-Scorer/internal/config"
	"github.com/Glen4687/Resume-Scorer/internal/report"
	"github.com/Glen4687/Resume-Scorer/internal/scoring"
	"github.com/Glen4687/Resume-Scorer/internal/secrets"
)

// TextExtractor reads the text of a resume document.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// CompleterFactory builds the model client for a provider once its key is known.
type CompleterFactory func(ctx context.Context, provider, model, apiKey string) (ai.Completer, error)

type Pipeline struct {
	Extractor    TextExtractor
	NewCompleter CompleterFactory
	Out          io.Writer
	Logger       *zap.Logger
}

// Params are the inputs of a single run.
type Params struct {
	ResumePath string
	JobTitle   string
	Provider   string
	Model      string
	APIKey     secrets.Source
	Weights    config.Weights
	OutputFile string
}

// Run executes the stages in order and stops at the first failure. Nothing is
// sent to the model until an API key has been resolved.
func (p *Pipeline) Run(ctx context.Context, params Params) (*scoring.Result, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := p.Out
	if out == nil {
		out = io.Discard
	}
	if p.Extractor == nil || p.NewCompleter == nil {
		return nil, errors.New("pipeline is not initialized")
	}

	apiKey, err := secrets.Load(params.APIKey)
	if err != nil {
		return nil, fmt.Errorf("loading api key: %w", err)
	}

	for _, name := range params.Weights.Validate() {
		log.Warn("scoring weight is not a non-negative number", zap.String("criterion", name))
	}
	weights, err := params.Weights.Indent()
	if err != nil {
		return nil, fmt.Errorf("formatting scoring weights: %w", err)
	}

	log.Info("reading resume file", zap.String("path", params.ResumePath))
	text, err := p.Extractor.ExtractText(params.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume file: %w", err)
	}
	log.Debug("resume text extracted", zap.Int("length", utf8.RuneCountInString(text)))

	completer, err := p.NewCompleter(ctx, params.Provider, params.Model, apiKey)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", params.Provider, err)
	}

	log.Info("getting job requirements", zap.String("job_title", params.JobTitle))
	requirements, err := scoring.NewResolver(completer, log).Resolve(ctx, params.JobTitle)
	if err != nil {
		return nil, fmt.Errorf("getting job requirements: %w", err)
	}

	fmt.Fprintf(out, "Identified Job Requirements:\n%s\n\n", requirements)
	fmt.Fprintln(out, "Scoring resume...")

	log.Info("scoring resume", zap.Strings("criteria", params.Weights.Names()))
	result, err := scoring.NewScorer(completer, log).Score(ctx, scoring.Input{
		ResumeText:   text,
		JobTitle:     params.JobTitle,
		Requirements: requirements,
		Weights:      weights,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring resume: %w", err)
	}

	if mismatch := scoring.CheckCriteria(result, params.Weights.Names()); !mismatch.Empty() {
		log.Warn("scored criteria differ from configured weights",
			zap.Strings("unscored", mismatch.Unscored),
			zap.Strings("unexpected", mismatch.Unexpected),
		)
	}

	outputFile := params.OutputFile
	if outputFile == "" {
		outputFile = config.DefaultOutputFile
	}
	log.Info("writing results", zap.String("path", outputFile))
	if err := report.Present(out, result, outputFile); err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}

	return result, nil
}
