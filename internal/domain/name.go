package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxNameLen = 64

// Name is a validated display name for users, exercises and routines.
type Name string

// NewName trims surrounding whitespace and validates the result: it must be
// non-empty and at most 64 characters long.
func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("name must not be empty")
	}
	if n := utf8.RuneCountInString(trimmed); n > maxNameLen {
		return "", fmt.Errorf("name must be %d characters or fewer (got %d)", maxNameLen, n)
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}
