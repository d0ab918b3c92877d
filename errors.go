package shapecheck

import (
	"errors"

	"github.com/shapecheck/shapecheck/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeNever        = "never"
	CodeConvert      = "convert_error"
	CodePredicate    = "predicate_failed"
	CodeUnionNoMatch = "union_no_match"
)

// Error is the single failure value produced by validation. Message is a
// caller-facing diagnostic; Path is the only caller-actionable structured
// field.
type Error struct {
	Code    string
	Message string
	Path    Path
	Cause   error // Optional: underlying error (converter failures).
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Message + " at " + e.Path.Pointer()
}

func (e *Error) Unwrap() error { return e.Cause }

// at prepends an enclosing combinator's accessor while the failure
// propagates upward. Errors are per-call values, so in-place prepending is
// safe.
func (e *Error) at(seg Segment) *Error {
	e.Path = append(Path{seg}, e.Path...)
	return e
}

// AsError extracts an *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// typeErr builds the fixed category-mismatch failure for a leaf or
// aggregate check, e.g. "not a boolean".
func typeErr(expected string) *Error {
	return &Error{
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
	}
}
