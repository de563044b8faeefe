package scoring

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
	"github.com/Glen4687/Resume-Scorer/internal/utils"
)

// Input carries everything embedded in the scoring prompt.
type Input struct {
	ResumeText   string
	JobTitle     string
	Requirements string
	// Weights is the criteria-to-weight JSON object, already indented.
	Weights string
}

// Scorer asks the model to grade a resume and parses the structured answer.
type Scorer struct {
	completer ai.Completer
	logger    *zap.Logger
	maxLogLen int
}

func NewScorer(completer ai.Completer, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{completer: completer, logger: logger, maxLogLen: defaultMaxLogLength}
}

// Score requests a JSON-constrained evaluation and returns it as a Result.
// A reply that is not JSON fails with *ParseError; one missing required keys
// fails with *MalformedResponseError.
func (s *Scorer) Score(ctx context.Context, in Input) (*Result, error) {
	if strings.TrimSpace(in.ResumeText) == "" {
		return nil, errors.New("resume text is required")
	}
	if strings.TrimSpace(in.JobTitle) == "" {
		return nil, errors.New("job title is required")
	}

	prompt := buildScorePrompt(in)
	s.logger.Debug("scoring request",
		zap.String("job_title", in.JobTitle),
		zap.Int("resume_length", utf8.RuneCountInString(in.ResumeText)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(utils.OneLine(prompt), s.maxLogLen)),
	)

	raw, err := s.completer.Complete(ctx, ai.Request{System: scoringSystem, Prompt: prompt, JSON: true})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("scoring response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(utils.OneLine(raw), s.maxLogLen)),
	)

	result, unused, err := parseResult(raw)
	if err != nil {
		return nil, err
	}
	if len(unused) > 0 {
		s.logger.Debug("ignored keys in scoring response", zap.Strings("keys", unused))
	}

	return result, nil
}
