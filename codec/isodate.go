package codec

import (
	"context"
	"time"

	genskema "github.com/reoring/genskema"
)

// dateEncodeLayout is the date-only pattern Encode emits. Decode accepts full
// ISO-8601 timestamps, so encode output is narrower than decode input; the
// asymmetry is inherited behavior and kept as-is.
const dateEncodeLayout = "2006-01-02"

// DateFromISOString returns the Brand for the "date-from-iso-string" type:
// ISO-8601 string on the wire, time.Time in the domain.
func DateFromISOString() genskema.Brand {
	return genskema.Brand{
		Name: genskema.NameDateFromISOString,
		Recognize: func(v any) bool {
			_, ok := v.(time.Time)
			return ok
		},
		Decode: func(ctx context.Context, wire any) (any, error) {
			s, ok := wire.(string)
			if !ok {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected string"}}
			}
			t, err := parseISO(s)
			if err != nil {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidFormat, Message: "invalid ISO-8601 date", Cause: err}}
			}
			return t, nil
		},
		Encode: func(ctx context.Context, domain any) (any, error) {
			t, ok := domain.(time.Time)
			if !ok {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected time.Time"}}
			}
			return t.UTC().Format(dateEncodeLayout), nil
		},
	}
}

func parseISO(s string) (time.Time, error) {
	// Accept RFC3339Nano first (trailing zeros optional), then the stricter
	// and date-only variants.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
		return t2, nil
	}
	if t3, err3 := time.Parse(dateEncodeLayout, s); err3 == nil {
		return t3, nil
	}
	return time.Time{}, err
}
