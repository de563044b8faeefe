package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// defaultWeights mirrors the criteria of the hosted scorer.
const defaultWeights = `{
  "customization": 15,
  "spelling_grammar": 10,
  "summary_statement": 10,
  "measurable_results": 15,
  "word_choice": 10,
  "formatting": 10,
  "optimal_length": 10,
  "contact_information": 10,
  "comprehensiveness": 10
}`

// Weights holds the scoring_weights object exactly as written in the file so it
// can be passed to the model verbatim, keeping key order and case.
type Weights struct {
	raw    json.RawMessage
	values map[string]any
}

// DefaultWeights returns the criteria used when the file has no scoring_weights.
func DefaultWeights() Weights {
	var w Weights
	if err := w.UnmarshalJSON([]byte(defaultWeights)); err != nil {
		panic(err)
	}
	return w
}

func (w *Weights) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*w = Weights{}
		return nil
	}

	var values map[string]any
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return fmt.Errorf("scoring_weights must be an object mapping criteria to weights: %w", err)
	}

	w.raw = append(json.RawMessage(nil), trimmed...)
	w.values = values
	return nil
}

func (w Weights) MarshalJSON() ([]byte, error) {
	if len(w.raw) == 0 {
		return []byte("null"), nil
	}
	return w.raw, nil
}

// IsZero reports whether no weights were configured.
func (w Weights) IsZero() bool {
	return len(w.raw) == 0
}

// Indent renders the weights with two-space indentation for prompts.
func (w Weights) Indent() (string, error) {
	if w.IsZero() {
		return "{}", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, w.raw, "", "  "); err != nil {
		return "", fmt.Errorf("indent scoring weights: %w", err)
	}
	return buf.String(), nil
}

// Names returns the configured criterion names in sorted order.
func (w Weights) Names() []string {
	return slices.Sorted(maps.Keys(w.values))
}

// Values returns a copy of the decoded weights.
func (w Weights) Values() map[string]any {
	return maps.Clone(w.values)
}

// Validate lists criteria whose weight is not a number. A non-numeric weight is
// still passed to the model, so callers treat these as warnings.
func (w Weights) Validate() []string {
	var invalid []string
	for _, name := range w.Names() {
		switch v := w.values[name].(type) {
		case float64:
			if v < 0 {
				invalid = append(invalid, name)
			}
		default:
			invalid = append(invalid, name)
		}
	}
	return invalid
}
