package story

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Input is the validated, sanitized request payload. It is constructed
// once by Validate and must not be mutated afterward; a nil TeamName
// means the caller did not supply one (or supplied one that sanitized
// to nothing).
type Input struct {
	TeamName *string
	Names    []string
}

// Limits applied after sanitization.
const (
	MaxNames       = 25
	MaxNameLen     = 40
	MaxTeamNameLen = 60
)

// ValidationError describes exactly which constraint a request violated.
// Its message is safe to return to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err originated from Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// rawRequest defers decoding of the individual fields so that a wrong
// type produces a constraint-specific message rather than a generic
// json.UnmarshalTypeError.
type rawRequest struct {
	TeamName json.RawMessage `json:"teamName"`
	Names    json.RawMessage `json:"names"`
}

// Validate parses and sanitizes a request body.
//
// Checks run in a fixed order and stop at the first failure: the body
// must be a JSON object, names must be a non-empty array of at most
// MaxNames strings, each name must survive sanitization and fit
// MaxNameLen, and teamName (when present) must be a string that fits
// MaxTeamNameLen. A teamName that sanitizes to the empty string is
// treated as absent.
func Validate(body []byte) (Input, error) {
	if !isJSONObject(body) {
		return Input{}, validationErrorf("request body must be a JSON object")
	}

	var raw rawRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return Input{}, validationErrorf("request body must be a JSON object")
	}

	var names []string
	if raw.Names == nil || json.Unmarshal(raw.Names, &names) != nil {
		return Input{}, validationErrorf("names must be an array of strings")
	}
	if len(names) == 0 {
		return Input{}, validationErrorf("names must contain at least one name")
	}
	if len(names) > MaxNames {
		return Input{}, validationErrorf("names must contain at most %d names", MaxNames)
	}

	sanitized := make([]string, 0, len(names))
	for i, name := range names {
		clean := Sanitize(name)
		if clean == "" {
			return Input{}, validationErrorf(
				"names[%d] is empty after removing control characters and whitespace", i)
		}
		if utf8.RuneCountInString(clean) > MaxNameLen {
			return Input{}, validationErrorf("names[%d] must be at most %d characters", i, MaxNameLen)
		}
		sanitized = append(sanitized, clean)
	}

	input := Input{Names: sanitized}

	if raw.TeamName != nil && !bytes.Equal(raw.TeamName, []byte("null")) {
		var teamName string
		if json.Unmarshal(raw.TeamName, &teamName) != nil {
			return Input{}, validationErrorf("teamName must be a string")
		}
		clean := Sanitize(teamName)
		if utf8.RuneCountInString(clean) > MaxTeamNameLen {
			return Input{}, validationErrorf("teamName must be at most %d characters", MaxTeamNameLen)
		}
		if clean != "" {
			input.TeamName = &clean
		}
	}

	return input, nil
}

// Sanitize replaces C0 control characters and DEL with spaces, collapses
// whitespace runs to a single space, and trims the ends.
func Sanitize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// isJSONObject reports whether the body's first JSON token opens an
// object. Arrays, null, and bare scalars are all rejected up front so
// the caller gets a shape error instead of a field error.
func isJSONObject(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
