package shapecheck

import "context"

// Validate is the uniform entry point: it applies any schema to any value
// and returns the two-variant Result. It is the only call shape consumers
// need regardless of schema kind.
func Validate(ctx context.Context, s *Schema, v any) Result {
	if s == nil {
		return fail(&Error{Code: CodeInvalidType, Message: "nil schema"})
	}
	out, changed, err := s.run(ctx, v)
	if err != nil {
		return fail(err)
	}
	return succeed(out, changed)
}

// Validate applies the schema to a value. Equivalent to the package-level
// Validate.
func (s *Schema) Validate(ctx context.Context, v any) Result {
	return Validate(ctx, s, v)
}

// Apply is a thin wrapper projecting Validate onto Go's (value, error)
// shape.
func Apply(ctx context.Context, s *Schema, v any) (any, error) {
	return Validate(ctx, s, v).Unwrap()
}

// SafeApply validates v, returning (nil, false) on failure.
func SafeApply(ctx context.Context, s *Schema, v any) (any, bool) {
	r := Validate(ctx, s, v)
	if !r.OK() {
		return nil, false
	}
	return r.Value(), true
}

// Is reports whether v conforms to the schema s.
func Is(ctx context.Context, s *Schema, v any) bool {
	return Validate(ctx, s, v).OK()
}
