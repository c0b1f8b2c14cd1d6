package codec

import (
	"context"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"

	genskema "github.com/reoring/genskema"
)

// CurrencyFromNumber returns the Brand for the "currency-from-number" type:
// JSON number on the wire, decimal.Decimal in the domain. Encoding back to a
// native float may lose precision; that is accepted.
func CurrencyFromNumber() genskema.Brand {
	return genskema.Brand{
		Name: genskema.NameCurrencyFromNumber,
		Recognize: func(v any) bool {
			_, ok := v.(decimal.Decimal)
			return ok
		},
		Decode: func(ctx context.Context, wire any) (any, error) {
			switch t := wire.(type) {
			case json.Number:
				d, err := decimal.NewFromString(t.String())
				if err != nil {
					return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidFormat, Message: "number does not form a valid decimal", Cause: err}}
				}
				return d, nil
			default:
				f, ok := toFloat64(wire)
				if !ok {
					return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected number"}}
				}
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidFormat, Message: "number does not form a valid decimal"}}
				}
				return decimal.NewFromFloat(f), nil
			}
		},
		Encode: func(ctx context.Context, domain any) (any, error) {
			d, ok := domain.(decimal.Decimal)
			if !ok {
				return nil, genskema.Issues{{Path: "/", Code: genskema.CodeInvalidType, Message: "expected decimal"}}
			}
			return d.InexactFloat64(), nil
		},
	}
}

func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
