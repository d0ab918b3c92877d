package codec

import (
	"context"
	"errors"
	"strconv"

	shapecheck "github.com/shapecheck/shapecheck"
)

// NumberText returns a converting schema that parses a decimal string into
// a float64.
func NumberText() *shapecheck.Schema {
	return shapecheck.Convert(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("not a decimal number: " + s)
		}
		return f, nil
	})
}
