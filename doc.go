package shapecheck

// Package shapecheck provides:
//
// - Composable runtime validation of in-memory values against immutable schemas
// - A stable error model (code, message, path segments, JSON Pointer rendering)
// - Converting vs non-converting result tagging with minimal-copy aggregates
// - Self-referential schema graphs via deferred suppliers
//
// Design policy:
// - Keep the closed schema variant and its single dispatch in the root package.
// - Place wire-format bridges (JSON/YAML/time text) under codec/.
// - Route all fixed diagnostics through i18n/ so messages stay swappable.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := shapecheck.Object(
//		shapecheck.F("name", shapecheck.String()),
//		shapecheck.F("age", shapecheck.Optional(shapecheck.Int())),
//	)
//	r := shapecheck.Validate(ctx, s, value)
//	if !r.OK() {
//		fmt.Println(r.Err().Message, r.Err().Path.Pointer())
//	}
