package domain

import (
	"strings"
	"unicode/utf8"
)

// InvalidTextMessage is the field message for text Postgres cannot store.
const InvalidTextMessage = "must be valid UTF-8 without NUL bytes"

// ValidText reports whether s is valid UTF-8 free of NUL bytes.
func ValidText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// CheckText returns a FieldError for field when s is not ValidText.
func CheckText(field, s string) []FieldError {
	if ValidText(s) {
		return nil
	}
	return []FieldError{{Field: field, Message: InvalidTextMessage}}
}
