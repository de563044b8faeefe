package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	wordNamespace          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	compatibilityNamespace = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// extractDOCX returns the text of every paragraph in document order, each
// followed by a newline.
func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer r.Close()

	return paragraphText(r.Editable().GetContent())
}

// paragraph collects the runs of one w:p and the lines of paragraphs nested
// in it, such as text box content.
type paragraph struct {
	text   strings.Builder
	nested strings.Builder
}

// paragraphText walks word/document.xml. Runs are joined inside a paragraph;
// tabs and breaks are kept as whitespace. A paragraph nested in another one
// becomes its own line after its parent. mc:Fallback holds a second copy of
// mc:Choice content and is skipped.
func paragraphText(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		out    strings.Builder
		stack  []*paragraph
		inText bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if isCompatibility(t.Name) && t.Name.Local == "Fallback" {
				if err := decoder.Skip(); err != nil {
					return "", fmt.Errorf("failed to read document.xml: %w", err)
				}
				continue
			}
			if !isWord(t.Name) || (len(stack) == 0 && t.Name.Local != "p") {
				continue
			}
			top := len(stack) - 1
			switch t.Name.Local {
			case "p":
				stack = append(stack, &paragraph{})
			case "t":
				inText = true
			case "tab":
				stack[top].text.WriteByte('\t')
			case "br", "cr":
				stack[top].text.WriteByte('\n')
			}
		case xml.EndElement:
			if !isWord(t.Name) || len(stack) == 0 {
				continue
			}
			switch t.Name.Local {
			case "p":
				closed := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				dst := &out
				if len(stack) > 0 {
					dst = &stack[len(stack)-1].nested
				}
				dst.WriteString(closed.text.String())
				dst.WriteByte('\n')
				dst.WriteString(closed.nested.String())
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	return out.String(), nil
}

func isWord(name xml.Name) bool {
	return name.Space == wordNamespace || name.Space == "w"
}

func isCompatibility(name xml.Name) bool {
	return name.Space == compatibilityNamespace || name.Space == "mc"
}
