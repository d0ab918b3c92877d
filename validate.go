package shapecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shapecheck/shapecheck/i18n"
)

// run is the single dispatch over the closed kind set. It returns the
// conforming value, whether that value differs from the input, and the
// failure if any. Every combinator either returns a child error that
// already carries its own path verbatim, or prepends its accessor before
// returning.
func (s *Schema) run(ctx context.Context, v any) (any, bool, *Error) {
	switch s.kind {
	case KindBool:
		if _, ok := v.(bool); ok {
			return v, false, nil
		}
		return nil, false, typeErr("boolean")
	case KindNumber:
		if isNumber(v) {
			return v, false, nil
		}
		return nil, false, typeErr("number")
	case KindInt:
		if isInteger(v) {
			return v, false, nil
		}
		return nil, false, typeErr("integer")
	case KindString:
		if _, ok := v.(string); ok {
			return v, false, nil
		}
		return nil, false, typeErr("string")
	case KindSymbol:
		if _, ok := v.(Symbol); ok {
			return v, false, nil
		}
		return nil, false, typeErr("symbol")
	case KindUnknown:
		return v, false, nil
	case KindNever:
		return nil, false, &Error{Code: CodeNever, Message: i18n.T(CodeNever, nil)}
	case KindConvert:
		return s.runConvert(ctx, v)
	case KindPredicate:
		if s.pred(v) {
			return v, false, nil
		}
		data := map[string]string{"name": s.predName}
		return nil, false, &Error{Code: CodePredicate, Message: i18n.T(CodePredicate, data)}
	case KindOptional:
		return s.elem.run(ctx, v)
	case KindObject:
		return s.runObject(ctx, v)
	case KindArray:
		return s.runArray(ctx, v)
	case KindOr:
		return s.runOr(ctx, v)
	case KindRecursive:
		return s.supply().run(ctx, v)
	}
	return nil, false, &Error{Code: CodeInvalidType, Message: "unknown schema kind: " + string(s.kind)}
}

func (s *Schema) runConvert(ctx context.Context, v any) (any, bool, *Error) {
	out, err := callConvert(ctx, s.conv, v)
	if err != nil {
		// A converter that surfaced a validation failure keeps its path.
		if ve, ok := AsError(err); ok {
			return nil, false, ve
		}
		return nil, false, &Error{Code: CodeConvert, Message: err.Error(), Cause: err}
	}
	return out, !sameValue(v, out), nil
}

// callConvert invokes a converter, recovering a panic into an ordinary
// error so no panic crosses the validation boundary.
func callConvert(ctx context.Context, fn ConvertFunc, v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn(ctx, v)
}

func (s *Schema) runObject(ctx context.Context, v any) (any, bool, *Error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false, typeErr("object")
	}

	var changes map[string]any
	record := func(name string, out any) {
		if changes == nil {
			changes = make(map[string]any)
		}
		changes[name] = out
	}

	// Required fields first, in declared order, so a missing required key
	// is always reported ahead of an invalid optional one.
	for _, f := range s.fields {
		if f.Schema.kind == KindOptional {
			continue
		}
		val, present := m[f.Name]
		if !present {
			return nil, false, &Error{
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, nil),
				Path:    Path{Key(f.Name)},
			}
		}
		out, ch, err := f.Schema.run(ctx, val)
		if err != nil {
			return nil, false, err.at(Key(f.Name))
		}
		if ch {
			record(f.Name, out)
		}
	}
	for _, f := range s.fields {
		if f.Schema.kind != KindOptional {
			continue
		}
		val, present := m[f.Name]
		if !present {
			continue
		}
		out, ch, err := f.Schema.elem.run(ctx, val)
		if err != nil {
			return nil, false, err.at(Key(f.Name))
		}
		if ch {
			record(f.Name, out)
		}
	}

	if changes == nil {
		return m, false, nil
	}
	// Copy-on-change: undeclared keys and unchanged fields carry over as-is.
	nm := make(map[string]any, len(m))
	for k, val := range m {
		nm[k] = val
	}
	for k, val := range changes {
		nm[k] = val
	}
	return nm, true, nil
}

func (s *Schema) runArray(ctx context.Context, v any) (any, bool, *Error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false, typeErr("array")
	}
	var out []any
	for i, el := range arr {
		ev, ch, err := s.elem.run(ctx, el)
		if err != nil {
			return nil, false, err.at(Index(i))
		}
		if ch {
			if out == nil {
				out = make([]any, len(arr))
				copy(out, arr)
			}
			out[i] = ev
		}
	}
	if out == nil {
		return arr, false, nil
	}
	return out, true, nil
}

func (s *Schema) runOr(ctx context.Context, v any) (any, bool, *Error) {
	msgs := make([]string, 0, len(s.alts))
	for _, alt := range s.alts {
		out, ch, err := alt.run(ctx, v)
		if err == nil {
			return out, ch, nil
		}
		msgs = append(msgs, err.Message)
	}
	b := &strings.Builder{}
	b.WriteString(i18n.T(CodeUnionNoMatch, nil))
	for i, m := range msgs {
		fmt.Fprintf(b, " (%d) %s", i+1, m)
	}
	return nil, false, &Error{Code: CodeUnionNoMatch, Message: b.String()}
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	}
	return false
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0) && math.Trunc(n) == n
	case float32:
		f := float64(n)
		return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}
