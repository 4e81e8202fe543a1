package validaros

import (
	"errors"
	"strings"

	"github.com/grafana/regexp"
)

// Separator splits a serialized value into its tokens. A separator is fixed
// at construction and always retains trailing empty tokens, so "a,," splits
// on "," into three tokens and the empty string splits into a single empty
// token. Separators are immutable and safe to share between goroutines.
type Separator struct {
	str     string
	literal string
	regExp  *regexp.Regexp
}

// Comma is a ready-made separator for the most common delimited form,
// comma-separated values.
var Comma = &Separator{str: ",", literal: ","}

// NewSeparator creates a separator that splits on an exact string. The
// string must not be empty.
func NewSeparator(literal string) (*Separator, error) {
	if literal == "" {
		return nil, errors.New("separator must not be empty")
	}
	return &Separator{str: literal, literal: literal}, nil
}

// NewPatternSeparator creates a separator that splits on a regular
// expression. Returns an error if the pattern string is invalid.
func NewPatternSeparator(patternStr string) (*Separator, error) {
	regExp, err := regexp.Compile(patternStr)
	if err != nil {
		return nil, err
	}
	return &Separator{str: patternStr, regExp: regExp}, nil
}

// Split breaks raw into tokens. The result always contains at least one
// token, and trailing empty tokens are preserved.
func (s *Separator) Split(raw string) []string {
	if s.regExp != nil {
		return s.regExp.Split(raw, -1)
	}
	return strings.Split(raw, s.literal)
}

// String returns the literal or pattern string the separator was created
// from.
func (s *Separator) String() string {
	return s.str
}
