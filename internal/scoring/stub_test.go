package scoring

import (
	"context"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
)

type stubCompleter struct {
	response string
	err      error
	requests []ai.Request
}

func (s *stubCompleter) Complete(_ context.Context, req ai.Request) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubCompleter) Model() string {
	return "stub-model"
}
