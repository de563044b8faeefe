package extract

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingExtractor(calls map[Format]int) *Extractor {
	strategy := func(format Format) Strategy {
		return func(string) (string, error) {
			calls[format]++
			return "text", nil
		}
	}
	return &Extractor{strategies: map[Format]Strategy{
		FormatPDF:  strategy(FormatPDF),
		FormatDOCX: strategy(FormatDOCX),
		FormatTXT:  strategy(FormatTXT),
	}}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "resume.pdf", want: FormatPDF},
		{path: "resume.PDF", want: FormatPDF},
		{path: "/tmp/cv.Docx", want: FormatDOCX},
		{path: "notes.TXT", want: FormatTXT},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := DetectFormat(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractTextPlain(t *testing.T) {
	path := writeText(t, "resume.TXT", "\ufeffJane Doe\nSenior Go Engineer\n")

	text, err := New().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Engineer\n", text)
}

func TestExtractTextPDF(t *testing.T) {
	path := writePDF(t, "resume.pdf", "Jane Doe", "Kubernetes")

	text, err := New().ExtractText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Kubernetes")
	assert.Less(t, strings.Index(text, "Jane Doe"), strings.Index(text, "Kubernetes"))
}

func TestExtractTextDOCX(t *testing.T) {
	path := writeDOCX(t, "resume.docx",
		para("Jane ", "Doe"),
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>`,
		para("Experience"),
	)

	text, err := New().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills:\tGo\nExperience\n", text)
}

func TestExtractTextWhitespaceOnly(t *testing.T) {
	tests := map[string]string{
		"txt":  writeText(t, "blank.txt", " \n\t \n"),
		"pdf":  writePDF(t, "blank.pdf", ""),
		"docx": writeDOCX(t, "blank.docx", para("   "), "<w:p/>"),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New().ExtractText(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyContent), "got %v", err)
		})
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.jpg", "resume.DOC", "resume.md", "resume"} {
		t.Run(name, func(t *testing.T) {
			calls := map[Format]int{}
			path := writeText(t, name, "Jane Doe")

			_, err := countingExtractor(calls).ExtractText(path)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)
			assert.Empty(t, calls)
		})
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	calls := map[Format]int{}
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := countingExtractor(calls).ExtractText(path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.Empty(t, calls)
}

func TestExtractTextDirectory(t *testing.T) {
	calls := map[Format]int{}
	dir := t.TempDir()

	_, err := countingExtractor(calls).ExtractText(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
	assert.Empty(t, calls)
}

func TestExtractTextDispatchesByFormat(t *testing.T) {
	calls := map[Format]int{}
	extractor := countingExtractor(calls)

	for _, name := range []string{"a.pdf", "b.docx", "c.txt", "d.Pdf"} {
		_, err := extractor.ExtractText(writeText(t, name, "x"))
		require.NoError(t, err)
	}

	assert.Equal(t, map[Format]int{FormatPDF: 2, FormatDOCX: 1, FormatTXT: 1}, calls)
}

func TestExtractTextCorruptDocuments(t *testing.T) {
	for _, name := range []string{"broken.pdf", "broken.docx"} {
		t.Run(name, func(t *testing.T) {
			_, err := New().ExtractText(writeText(t, name, "definitely not a document"))
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrEmptyContent))
		})
	}
}

func TestParagraphTextNestedAndBreaks(t *testing.T) {
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>` +
		`<w:sectPr><w:t>ignored</w:t></w:sectPr>` +
		`</w:body></w:document>`

	text, err := paragraphText(xml)

	require.NoError(t, err)
	assert.Equal(t, "Cell\nLine one\nLine two\n", text)
}

func TestParagraphTextTextBoxOnce(t *testing.T) {
	textBox := `<w:txbxContent><w:p><w:r><w:t>Go Kubernetes</w:t></w:r></w:p></w:txbxContent>`
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
		` xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"` +
		` xmlns:v="urn:schemas-microsoft-com:vml"><w:body>` +
		`<w:p><w:r><w:t>Header</w:t></w:r><w:r><mc:AlternateContent>` +
		`<mc:Choice Requires="wps"><w:drawing><wps:wsp><wps:txbx>` + textBox + `</wps:txbx></wps:wsp></w:drawing></mc:Choice>` +
		`<mc:Fallback><w:pict><v:shape><v:textbox>` + textBox + `</v:textbox></v:shape></w:pict></mc:Fallback>` +
		`</mc:AlternateContent></w:r><w:r><w:t> Footer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := paragraphText(xml)

	require.NoError(t, err)
	assert.Equal(t, "Header Footer\nGo Kubernetes\nExperience\n", text)
}
