package shapecheck

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Kind identifies a schema variant. The set is closed; validation is a
// single dispatch over it in validate.go.
type Kind string

const (
	KindBool      Kind = "boolean"
	KindNumber    Kind = "number"
	KindInt       Kind = "integer"
	KindString    Kind = "string"
	KindSymbol    Kind = "symbol"
	KindUnknown   Kind = "unknown"
	KindNever     Kind = "never"
	KindConvert   Kind = "convert"
	KindPredicate Kind = "predicate"
	KindOptional  Kind = "optional"
	KindObject    Kind = "properties"
	KindArray     Kind = "array"
	KindOr        Kind = "or"
	KindRecursive Kind = "recursive"
)

// Symbol is an interned identifier value, the Go rendering of the symbol
// primitive found in dynamic runtimes. Symbols compare by value and are
// distinct from plain strings at validation time.
type Symbol string

// ConvertFunc transforms a value. A returned error (or a panic, which is
// recovered) becomes a validation failure carrying the error's message.
type ConvertFunc func(ctx context.Context, v any) (any, error)

// PredicateFunc tests a value without changing it. It must not have side
// effects; it is invoked exactly once per validation at its node.
type PredicateFunc func(v any) bool

// SupplierFunc resolves a deferred schema reference. It is called anew on
// every validation at its node and must be cheap and side-effect-free.
type SupplierFunc func() *Schema

// Field pairs a property key with its schema inside Object. Declaration
// order is significant: required fields are checked before optional ones,
// each group in declared order.
type Field struct {
	Name   string
	Schema *Schema
}

// F builds a Field.
func F(name string, s *Schema) Field { return Field{Name: name, Schema: s} }

// Schema is an immutable validation node identified by its Kind plus
// kind-specific payload. Schemas are never mutated after construction and
// may be shared, reused, and validated concurrently without locking.
type Schema struct {
	kind       Kind
	elem       *Schema
	fields     []Field
	alts       []*Schema
	conv       ConvertFunc
	pred       PredicateFunc
	predName   string
	supply     SupplierFunc
	converting bool
}

// Kind returns the schema's variant tag. It never changes after
// construction.
func (s *Schema) Kind() Kind { return s.kind }

// Converting reports the static classification of the schema: whether a
// successful validation is allowed to return a value that differs from its
// input. Recursive and Or nodes report conservatively (resolution is
// deferred / per-branch); the dynamic Result.Changed flag reflects what a
// given call actually did.
func (s *Schema) Converting() bool { return s.converting }

var (
	boolSchema    = &Schema{kind: KindBool}
	numberSchema  = &Schema{kind: KindNumber}
	intSchema     = &Schema{kind: KindInt}
	stringSchema  = &Schema{kind: KindString}
	symbolSchema  = &Schema{kind: KindSymbol}
	unknownSchema = &Schema{kind: KindUnknown}
	neverSchema   = &Schema{kind: KindNever}
)

// Bool returns the boolean leaf schema.
func Bool() *Schema { return boolSchema }

// Number returns the numeric leaf schema. It accepts the decoded-JSON
// numeric categories: float64, json.Number and the Go integer kinds.
func Number() *Schema { return numberSchema }

// Int returns the integer leaf schema: Go integer kinds plus integral
// float64/json.Number values.
func Int() *Schema { return intSchema }

// String returns the string leaf schema.
func String() *Schema { return stringSchema }

// Sym returns the Symbol leaf schema.
func Sym() *Schema { return symbolSchema }

// Unknown returns the accept-all leaf schema; it succeeds with the input
// unchanged.
func Unknown() *Schema { return unknownSchema }

// Never returns the reject-all leaf schema.
func Never() *Schema { return neverSchema }

// Convert wraps a transformation. It is the sole bridge between arbitrary
// fallible computation and the validation protocol: failures surface as
// Error values, never as panics crossing the API.
func Convert(fn ConvertFunc) *Schema {
	if fn == nil {
		panic("shapecheck: Convert requires a function")
	}
	return &Schema{kind: KindConvert, conv: fn, converting: true}
}

// Predicate wraps a boolean refinement test. Success preserves the input
// value's identity; failure names the test function when it has one.
func Predicate(fn PredicateFunc) *Schema {
	if fn == nil {
		panic("shapecheck: Predicate requires a function")
	}
	return &Schema{kind: KindPredicate, pred: fn, predName: funcName(fn)}
}

// Optional marks a property as omit-able inside Object: an absent key is
// skipped, a present one defers to child. Outside an object it simply
// defers to child.
func Optional(child *Schema) *Schema {
	if child == nil {
		panic("shapecheck: Optional requires a child schema")
	}
	return &Schema{kind: KindOptional, elem: child, converting: child.converting}
}

// Object returns the properties schema over map[string]any records.
// Undeclared keys pass through untouched. With no fields it is a bare
// is-an-object check.
func Object(fields ...Field) *Schema {
	conv := false
	fs := make([]Field, len(fields))
	for i, f := range fields {
		if f.Schema == nil {
			panic("shapecheck: Object field " + f.Name + " has no schema")
		}
		fs[i] = f
		conv = conv || f.Schema.converting
	}
	return &Schema{kind: KindObject, fields: fs, converting: conv}
}

// Array returns the sequence schema over []any with the given element
// schema.
func Array(elem *Schema) *Schema {
	if elem == nil {
		panic("shapecheck: Array requires an element schema")
	}
	return &Schema{kind: KindArray, elem: elem, converting: elem.converting}
}

// Or returns the choice schema: alternatives are tried in declared order
// and the first success is returned verbatim. First-match-wins is the only
// tie-break.
func Or(alts ...*Schema) *Schema {
	conv := false
	as := make([]*Schema, len(alts))
	for i, a := range alts {
		if a == nil {
			panic("shapecheck: Or requires non-nil alternatives")
		}
		as[i] = a
		conv = conv || a.converting
	}
	return &Schema{kind: KindOr, alts: as, converting: conv}
}

// Recursive defers schema resolution behind a supplier so a schema can
// reference itself (directly or through a cycle) without evaluating the
// self-reference during construction.
func Recursive(supply SupplierFunc) *Schema {
	if supply == nil {
		panic("shapecheck: Recursive requires a supplier")
	}
	return &Schema{kind: KindRecursive, supply: supply, converting: true}
}

// funcName resolves a function's runtime name, trimmed to its package-local
// form. Returns "" when no name is available.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
