package shapecheck

// Result is the two-variant outcome of applying a schema to a value:
// success carrying the (possibly transformed) value, or failure carrying a
// structured *Error.
type Result struct {
	value   any
	err     *Error
	changed bool
}

func succeed(v any, changed bool) Result { return Result{value: v, changed: changed} }

func fail(e *Error) Result { return Result{err: e} }

// OK reports whether validation succeeded.
func (r Result) OK() bool { return r.err == nil }

// Value returns the conforming value. For a non-converting schema this is
// the identical input value; for a converting one it may differ.
func (r Result) Value() any { return r.value }

// Err returns the failure, or nil on success.
func (r Result) Err() *Error { return r.err }

// Changed reports whether the success value differs in identity/value from
// the input. Aggregate rebuilding keys off this flag.
func (r Result) Changed() bool { return r.changed }

// Unwrap projects the Result onto Go's (value, error) shape.
func (r Result) Unwrap() (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.value, nil
}
