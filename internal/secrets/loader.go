package secrets

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// ErrMissing is returned when no usable secret value could be resolved.
var ErrMissing = errors.New("secret is not configured")

// Source describes how to load a secret value.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline secret value provided via the configuration file.
	Value string
	// File points to a file containing the secret value. When set it takes
	// precedence over Value.
	File string
	// Fallback is consulted when neither File nor Value yield a usable secret,
	// typically an environment variable.
	Fallback string
	// Placeholders lists template values that must not be treated as real secrets.
	Placeholders []string
}

// Load returns the resolved secret from the provided source. The returned secret
// is always trimmed. Empty and placeholder values count as unset; when nothing
// usable remains the returned error wraps ErrMissing.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	candidates := make([]string, 0, 3)

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		candidates = append(candidates, string(data))
	}
	candidates = append(candidates, src.Value, src.Fallback)

	placeholder := false
	for _, candidate := range candidates {
		secret := strings.TrimSpace(candidate)
		if secret == "" {
			continue
		}
		if slices.Contains(src.Placeholders, secret) {
			placeholder = true
			continue
		}
		return secret, nil
	}

	if placeholder {
		return "", fmt.Errorf("%w: %s is still set to the placeholder value", ErrMissing, name)
	}
	if file != "" {
		return "", fmt.Errorf("%w: %s file %q is empty", ErrMissing, name, file)
	}
	return "", fmt.Errorf("%w: %s not found", ErrMissing, name)
}
