package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed result.schema.json
var resultSchema string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultSchema))
})

// parseResult turns the raw model answer into a Result. It also returns the
// keys present in the answer that Result has no field for.
func parseResult(raw string) (*Result, []string, error) {
	cleaned := stripCodeFence(raw)

	var data any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, nil, &ParseError{Raw: raw, Cause: err}
	}

	if err := validateShape(data); err != nil {
		return nil, nil, err
	}

	var (
		result Result
		meta   mapstructure.Metadata
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Metadata:         &meta,
		Result:           &result,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create result decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, nil, fmt.Errorf("decode scoring response: %w", err)
	}

	sort.Strings(meta.Unused)
	return &result, meta.Unused, nil
}

func validateShape(data any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load result schema: %w", err)
	}

	res, err := schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("validate scoring response: %w", err)
	}
	if res.Valid() {
		return nil
	}

	malformed := &MalformedResponseError{Errors: make([]FieldError, 0, len(res.Errors()))}
	for _, desc := range res.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		malformed.Errors = append(malformed.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return malformed
}

func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
