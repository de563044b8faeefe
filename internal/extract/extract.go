// Package extract turns resume documents into plain text.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported resume document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

var (
	// ErrNotFound is returned when the resume path does not exist.
	ErrNotFound = errors.New("resume file not found")
	// ErrUnsupportedFormat is returned for extensions other than .pdf, .docx and .txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyContent is returned when a document yields only whitespace.
	ErrEmptyContent = errors.New("the resume file is empty or contains no text")
)

// Strategy converts the document at path into text.
type Strategy func(path string) (string, error)

// Extractor dispatches a resume file to the strategy registered for its format.
type Extractor struct {
	strategies map[Format]Strategy
}

// New returns an Extractor with the PDF, DOCX and plain text strategies.
func New() *Extractor {
	return &Extractor{
		strategies: map[Format]Strategy{
			FormatPDF:  extractPDF,
			FormatDOCX: extractDOCX,
			FormatTXT:  extractTXT,
		},
	}
}

// DetectFormat infers the document format from the file extension, ignoring case.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatTXT, nil
	default:
		if ext == "" {
			ext = "(none)"
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ExtractText returns the text of the resume at path. The file must exist, have
// a supported extension and contain at least one non-whitespace character.
func (e *Extractor) ExtractText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return "", fmt.Errorf("checking resume file %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("resume path %q is a directory", path)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}

	strategy, ok := e.strategies[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	text, err := strategy(path)
	if err != nil {
		return "", fmt.Errorf("extracting %s text: %w", format, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}

	return text, nil
}

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
