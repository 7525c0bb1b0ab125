// Package input validates raw user input at the boundary, so malformed
// tokens are rejected before any generator runs and no partial trace is ever
// produced from bad data.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Sentinel errors for input validation.
var (
	// ErrNonNumeric names a token that does not parse as an integer.
	ErrNonNumeric = errors.New("input: non-numeric token")

	// ErrEmptyInput indicates no tokens were supplied.
	ErrEmptyInput = errors.New("input: empty input")
)

// ParseInts splits raw on commas and whitespace and parses every token as a
// base-10 integer. The first bad token aborts with ErrNonNumeric naming it;
// an input with no tokens at all is ErrEmptyInput.
func ParseInts(raw string) ([]int, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNonNumeric, tok)
		}
		out[i] = v
	}
	return out, nil
}

// ParseInt parses a single integer token (a target, start id, or index),
// tolerating surrounding whitespace.
func ParseInt(raw string) (int, error) {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return 0, ErrEmptyInput
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, tok)
	}
	return v, nil
}
