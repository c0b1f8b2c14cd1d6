// Package transit serializes decoded domain values, including rich types
// like time.Time and decimal.Decimal, to JSON and back symmetrically. Rich
// values cross the wire inside a tagged envelope:
//
//	{"$type": "decimal", "value": "12.34"}
//
// Additional types can be registered as (name, match, wrap, unwrap) codecs.
package transit

import (
	"fmt"
	"sync"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

const (
	typeKey  = "$type"
	valueKey = "value"
)

// Codec describes how one rich domain type crosses the JSON boundary.
type Codec struct {
	// Name tags the envelope and keys the registry.
	Name string
	// Match reports whether v is an instance of this codec's domain type.
	Match func(v any) bool
	// Wrap projects the domain value onto a plain JSON value.
	Wrap func(v any) (any, error)
	// Unwrap restores the domain value from the plain JSON value.
	Unwrap func(v any) (any, error)
}

var (
	regMu  sync.RWMutex
	order  []Codec
	byName = map[string]Codec{}
)

// Register installs c. Match order follows registration order; registering an
// existing name replaces it in place.
func Register(c Codec) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := byName[c.Name]; ok {
		for i := range order {
			if order[i].Name == c.Name {
				order[i] = c
				break
			}
		}
	} else {
		order = append(order, c)
	}
	byName[c.Name] = c
}

func matchCodec(v any) (Codec, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, c := range order {
		if c.Match(v) {
			return c, true
		}
	}
	return Codec{}, false
}

func lookupCodec(name string) (Codec, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	c, ok := byName[name]
	return c, ok
}

func init() {
	Register(Codec{
		Name:  "time",
		Match: func(v any) bool { _, ok := v.(time.Time); return ok },
		Wrap: func(v any) (any, error) {
			return v.(time.Time).UTC().Format(time.RFC3339Nano), nil
		},
		Unwrap: func(v any) (any, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("transit: time envelope expects string, got %T", v)
			}
			return time.Parse(time.RFC3339Nano, s)
		},
	})
	Register(Codec{
		Name:  "decimal",
		Match: func(v any) bool { _, ok := v.(decimal.Decimal); return ok },
		Wrap: func(v any) (any, error) {
			return v.(decimal.Decimal).String(), nil
		},
		Unwrap: func(v any) (any, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("transit: decimal envelope expects string, got %T", v)
			}
			return decimal.NewFromString(s)
		},
	})
}

// Marshal serializes v, wrapping registered rich values in tagged envelopes.
// Maps whose keys collide with the envelope tag are not escaped; values meant
// for transit should not use "$type" as a plain key.
func Marshal(v any) ([]byte, error) {
	w, err := wrapValue(v)
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(w)
}

// Unmarshal deserializes transit JSON, restoring rich values from their
// envelopes.
func Unmarshal(data []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return unwrapValue(v)
}

func wrapValue(v any) (any, error) {
	if c, ok := matchCodec(v); ok {
		plain, err := c.Wrap(v)
		if err != nil {
			return nil, err
		}
		return map[string]any{typeKey: c.Name, valueKey: plain}, nil
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			w, err := wrapValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			w, err := wrapValue(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	default:
		return v, nil
	}
}

func unwrapValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if name, ok := t[typeKey].(string); ok {
			if inner, ok := t[valueKey]; ok && len(t) == 2 {
				c, ok := lookupCodec(name)
				if !ok {
					return nil, fmt.Errorf("transit: unknown envelope type %q", name)
				}
				return c.Unwrap(inner)
			}
		}
		out := make(map[string]any, len(t))
		for k, vv := range t {
			u, err := unwrapValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = u
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			u, err := unwrapValue(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = u
		}
		return out, nil
	default:
		return v, nil
	}
}
