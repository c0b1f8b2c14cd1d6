package codec

import (
	"context"

	genskema "github.com/reoring/genskema"
)

// UUID returns the Brand for the "uuid" string type. The wire and domain
// shapes are both string; Decode is identity and performs no format check
// beyond the generic string assertion.
func UUID() genskema.Brand {
	return genskema.Brand{
		Name: genskema.NameUUID,
		Recognize: func(v any) bool {
			_, ok := v.(string)
			return ok
		},
		Decode: func(ctx context.Context, wire any) (any, error) {
			s, ok := wire.(string)
			if !ok {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected string"}}
			}
			return s, nil
		},
		Encode: func(ctx context.Context, domain any) (any, error) {
			s, ok := domain.(string)
			if !ok {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected string"}}
			}
			return s, nil
		},
	}
}
