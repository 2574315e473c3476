package form

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Messages shown next to an invalid field.
const (
	MsgRequired          = "This field is required"
	MsgInvalidCharacters = "Invalid characters detected"
)

var (
	// ErrRequired reports an empty or whitespace-only value.
	ErrRequired = errors.New("form: field is required")
	// ErrInvalidCharacters reports a value outside the allowed character set.
	ErrInvalidCharacters = errors.New("form: invalid characters")
)

// ASCII letters, the accented Latin ranges À-Ö, Ø-ö, ø-ÿ, apostrophe, space and hyphen.
var nameRegexp = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ' \-]+$`)

// Kind classifies a validation outcome.
type Kind int

const (
	KindNone Kind = iota
	KindRequired
	KindInvalidCharacters
)

// Result is the outcome of validating one value.
type Result struct {
	Valid   bool
	Message string
	Kind    Kind
}

// Err returns the sentinel error for r, or nil when r is valid.
func (r Result) Err() error {
	switch r.Kind {
	case KindRequired:
		return ErrRequired
	case KindInvalidCharacters:
		return ErrInvalidCharacters
	}
	return nil
}

// Validate checks a single name value. The character check runs on the
// untrimmed value, so surrounding spaces are allowed but tabs are not.
func Validate(value string) Result {
	if Trim(value) == "" {
		return Result{Message: MsgRequired, Kind: KindRequired}
	}
	if !nameRegexp.MatchString(value) {
		return Result{Message: MsgInvalidCharacters, Kind: KindInvalidCharacters}
	}
	return Result{Valid: true}
}

// Trim strips leading and trailing whitespace the way String.prototype.trim
// does: Unicode White_Space except NEL (U+0085), plus the byte order mark.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}
