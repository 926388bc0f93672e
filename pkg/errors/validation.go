package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest accepted frame or slot name, in runes.
const MaxNameLength = 256

// ValidateName checks a frame or slot name before it enters the graph.
// kind is used in the message only ("frame", "slot").
//
// The rules keep names representable in the line-oriented model file:
//   - No empty or all-blank names
//   - No control characters (newlines would split a record)
//   - Maximum length of MaxNameLength runes
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "%s name too long (max %d characters)", kind, MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "%s name contains invalid control characters", kind)
		}
	}

	return nil
}

// ValidateValue checks a literal slot value. Empty values are allowed;
// callers substitute a default.
func ValidateValue(value string) error {
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "slot value contains invalid control characters")
		}
	}
	return nil
}
