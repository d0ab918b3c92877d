package codec

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"

	shapecheck "github.com/shapecheck/shapecheck"
)

// YAMLText returns a converting schema that decodes a YAML document from a
// string and validates the decoded value against elem.
func YAMLText(elem *shapecheck.Schema) *shapecheck.Schema {
	return shapecheck.Convert(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		var decoded any
		if err := yaml.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, err
		}
		return shapecheck.Apply(ctx, elem, decoded)
	})
}
