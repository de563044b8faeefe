package ai

import (
	"context"
	"fmt"
)

// Request is a single prompt sent to a language model.
type Request struct {
	System string
	Prompt string
	// JSON asks the provider to constrain the answer to a JSON object.
	JSON bool
}

// Completer sends one request to a model and returns the text of its answer.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

// APICallError is returned when the provider call itself fails.
type APICallError struct {
	Provider   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APICallError) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s api error: %s", e.Provider, msg)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
