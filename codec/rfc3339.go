package codec

import (
	"context"
	"errors"
	"time"

	shapecheck "github.com/shapecheck/shapecheck"
)

// TimeRFC3339 returns a converting schema that parses an RFC3339 string
// into a time.Time.
func TimeRFC3339() *shapecheck.Schema {
	return shapecheck.Convert(func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		return parseRFC3339(s)
	})
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, errors.New("invalid RFC3339 time")
	}
	return t, nil
}
