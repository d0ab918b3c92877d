package codec

import (
	"context"
	"errors"

	json "github.com/goccy/go-json"

	shapecheck "github.com/shapecheck/shapecheck"
)

// JSONText returns a converting schema that decodes a JSON document from a
// string and validates the decoded value against elem. Failures inside
// elem keep their paths relative to the decoded document.
func JSONText(elem *shapecheck.Schema) *shapecheck.Schema {
	return shapecheck.Convert(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, err
		}
		return shapecheck.Apply(ctx, elem, decoded)
	})
}
