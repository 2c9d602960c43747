package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidateChoice checks that value is one of choices. kind names the option
// in the error message (e.g. "output format").
func ValidateChoice(kind, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid %s: %q (must be one of: %s)", kind, value, strings.Join(choices, ", "))
}

// ValidateOutputPath validates the path a rendered artifact is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - The extension, if any, must match format
func ValidateOutputPath(path, format string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "" && ext != format {
		return New(ErrCodeInvalidFormat, "output path %q does not match format %q", path, format)
	}

	return nil
}
