// Package report prints a scoring result and persists it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Glen4687/Resume-Scorer/internal/scoring"
)

var headers = []string{"Criterion", "Score", "Positive Feedback", "Negative Feedback"}

const (
	ratingExcellent        = "Excellent"
	ratingGood             = "Good"
	ratingNeedsImprovement = "Needs Improvement"
)

// Present renders result to w, writes it to outputFile and reports where it was saved.
func Present(w io.Writer, result *scoring.Result, outputFile string) error {
	if err := Render(w, result); err != nil {
		return err
	}
	if err := WriteJSON(outputFile, result); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nFull results saved to %s\n", outputFile)
	return err
}

// Render prints the per-criterion grid followed by the total, rating and summary.
func Render(w io.Writer, result *scoring.Result) error {
	if result == nil {
		return fmt.Errorf("no scoring result to render")
	}

	rows := make([][]string, 0, len(result.Scores))
	for _, s := range result.Scores {
		rows = append(rows, []string{s.Criterion, s.Score, s.Positive, s.Negative})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(true)
	table.SetAutoWrapText(true)
	table.AppendBulk(rows)
	table.Render()

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nTotal Score: %s/100\n", result.TotalScore)
	if rating, ok := Rating(result.TotalScore); ok {
		fmt.Fprintf(&sb, "Rating: %s\n", rating)
	}
	fmt.Fprintf(&sb, "\nSummary Feedback:\n%s\n", result.SummaryFeedback)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Rating buckets the leading number of total. It reports false when total does
// not start with a number.
func Rating(total string) (string, bool) {
	score, ok := leadingNumber(total)
	if !ok {
		return "", false
	}
	switch {
	case score >= 80:
		return ratingExcellent, true
	case score >= 60:
		return ratingGood, true
	default:
		return ratingNeedsImprovement, true
	}
}

func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	dot := false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WriteJSON overwrites path with result as 2-space indented JSON.
func WriteJSON(path string, result *scoring.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write results file %q: %w", path, err)
	}
	return nil
}

// ReadJSON loads a result previously written by WriteJSON.
func ReadJSON(path string) (*scoring.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file %q: %w", path, err)
	}
	var result scoring.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode results file %q: %w", path, err)
	}
	return &result, nil
}
