package shapecheck_test

import (
	"context"
	"strings"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestArray_TypeCheck(t *testing.T) {
	ctx := context.Background()

	r := shapecheck.Validate(ctx, shapecheck.Array(shapecheck.Number()), "nope")
	if r.OK() || r.Err().Message != "not an array" {
		t.Fatalf("expected not-an-array failure, got %v", r.Err())
	}
}

func TestArray_ElementFailurePath(t *testing.T) {
	ctx := context.Background()

	s := shapecheck.Array(shapecheck.Number())
	r := shapecheck.Validate(ctx, s, []any{1.0, "x", 3.0})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if got := r.Err().Path.Pointer(); got != "/1" {
		t.Fatalf("unexpected path: %q", got)
	}
	if r.Err().Message != "not a number" {
		t.Fatalf("unexpected message: %q", r.Err().Message)
	}
}

func TestArray_MinimalCopy(t *testing.T) {
	ctx := context.Background()

	in := []any{"a", "b", "c"}
	plain := shapecheck.Array(shapecheck.String())
	r := shapecheck.Validate(ctx, plain, in)
	if !r.OK() || r.Changed() {
		t.Fatalf("unexpected result: %v changed=%v", r.Err(), r.Changed())
	}
	if !sameRef(in, r.Value()) {
		t.Fatalf("unchanged array must preserve identity")
	}

	upperB := shapecheck.Convert(func(_ context.Context, v any) (any, error) {
		s := v.(string)
		if s == "b" {
			return strings.ToUpper(s), nil
		}
		return s, nil
	})
	inner := map[string]any{"k": 1}
	mixed := []any{inner, "b", "c"}
	r = shapecheck.Validate(ctx, shapecheck.Array(shapecheck.Or(shapecheck.Object(), upperB)), mixed)
	if !r.OK() || !r.Changed() {
		t.Fatalf("unexpected result: %v changed=%v", r.Err(), r.Changed())
	}
	out := r.Value().([]any)
	if sameRef(mixed, out) {
		t.Fatalf("changed array must be a new slice")
	}
	if out[1] != "B" || out[2] != "c" {
		t.Fatalf("unexpected elements: %#v", out)
	}
	if !sameRef(inner, out[0]) {
		t.Fatalf("untouched elements must keep their identity")
	}
	if mixed[1] != "b" {
		t.Fatalf("input must never be mutated")
	}
}

func TestArray_Converting(t *testing.T) {
	conv := shapecheck.Convert(func(_ context.Context, v any) (any, error) { return v, nil })
	if shapecheck.Array(shapecheck.Number()).Converting() {
		t.Fatalf("array over non-converting element must be non-converting")
	}
	if !shapecheck.Array(conv).Converting() {
		t.Fatalf("array over converting element must be converting")
	}
}
