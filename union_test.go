package shapecheck_test

import (
	"context"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestOr_FirstSuccessVerbatim(t *testing.T) {
	ctx := context.Background()

	s := shapecheck.Or(shapecheck.Number(), shapecheck.String())
	r := shapecheck.Validate(ctx, s, "hello")
	if !r.OK() {
		t.Fatalf("unexpected err: %v", r.Err())
	}
	if r.Value() != "hello" || r.Changed() {
		t.Fatalf("matching branch result must come back verbatim: %#v", r.Value())
	}
}

func TestOr_FirstMatchWins(t *testing.T) {
	ctx := context.Background()

	addOne := shapecheck.Convert(func(_ context.Context, v any) (any, error) {
		return v.(float64) + 1, nil
	})
	addTen := shapecheck.Convert(func(_ context.Context, v any) (any, error) {
		return v.(float64) + 10, nil
	})
	s := shapecheck.Or(addOne, addTen)
	r := shapecheck.Validate(ctx, s, 1.0)
	if !r.OK() || r.Value() != 2.0 {
		t.Fatalf("declaration order must break ties: %#v (%v)", r.Value(), r.Err())
	}
}

func TestOr_AggregatedFailure(t *testing.T) {
	ctx := context.Background()

	s := shapecheck.Or(shapecheck.Number(), shapecheck.String())
	r := shapecheck.Validate(ctx, s, true)
	if r.OK() {
		t.Fatalf("expected failure")
	}
	want := "must resolve any one of the following issues: (1) not a number (2) not a string"
	if r.Err().Message != want {
		t.Fatalf("unexpected message:\n got: %q\nwant: %q", r.Err().Message, want)
	}
	if r.Err().Code != shapecheck.CodeUnionNoMatch {
		t.Fatalf("unexpected code: %q", r.Err().Code)
	}
	if got := r.Err().Path.Pointer(); got != "/" {
		t.Fatalf("or failure path must be empty at its own node, got %q", got)
	}
}

func TestOr_ShortCircuit(t *testing.T) {
	ctx := context.Background()

	calls := 0
	second := shapecheck.Predicate(func(v any) bool { calls++; return true })
	s := shapecheck.Or(shapecheck.Number(), second)

	in := map[string]any{"k": 1}
	r := shapecheck.Validate(ctx, s, in)
	if !r.OK() {
		t.Fatalf("unexpected err: %v", r.Err())
	}
	if calls != 1 {
		t.Fatalf("second branch must run exactly once, ran %d times", calls)
	}
	if !sameRef(in, r.Value()) {
		t.Fatalf("predicate branch must preserve identity")
	}

	// Once a branch matched, later branches are never tried.
	calls = 0
	first := shapecheck.Or(second, shapecheck.Never())
	if !shapecheck.Is(ctx, first, 1) {
		t.Fatalf("expected success")
	}
	if calls != 1 {
		t.Fatalf("expected a single predicate call, got %d", calls)
	}
}

func TestOr_NestedPathPrepending(t *testing.T) {
	ctx := context.Background()

	s := shapecheck.Object(shapecheck.F("v", shapecheck.Or(shapecheck.Number(), shapecheck.String())))
	r := shapecheck.Validate(ctx, s, map[string]any{"v": true})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if got := r.Err().Path.Pointer(); got != "/v" {
		t.Fatalf("ancestor must prepend its accessor: %q", got)
	}
}
