package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
	"github.com/Glen4687/Resume-Scorer/internal/utils"
)

const defaultMaxLogLength = 200

// Resolver asks the model which skills, keywords and certifications a job title calls for.
type Resolver struct {
	completer ai.Completer
	logger    *zap.Logger
	maxLogLen int
}

func NewResolver(completer ai.Completer, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{completer: completer, logger: logger, maxLogLen: defaultMaxLogLength}
}

// Resolve returns the model's answer verbatim.
func (r *Resolver) Resolve(ctx context.Context, jobTitle string) (string, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return "", errors.New("job title is required")
	}

	prompt := buildRequirementsPrompt(jobTitle)
	r.logger.Debug("requirements request",
		zap.String("job_title", jobTitle),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(utils.OneLine(prompt), r.maxLogLen)),
	)

	raw, err := r.completer.Complete(ctx, ai.Request{System: requirementsSystem, Prompt: prompt})
	if err != nil {
		return "", err
	}

	r.logger.Debug("requirements response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(utils.OneLine(raw), r.maxLogLen)),
	)

	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("model returned no requirements for %q", jobTitle)
	}

	return raw, nil
}
