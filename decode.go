package genskema

import (
	"context"
	"encoding/json"
	"strconv"
)

// Decode validates wire against n and converts it into its domain shape.
// Brand-name dispatch runs before structural dispatch, so a node named
// "currency-from-number" decodes through the currency brand regardless of its
// structural tag. Failures are reported as Issues carrying JSON Pointer paths.
func Decode(ctx context.Context, n *Node, wire any) (any, error) {
	return decodeAt(ctx, n, wire, "/")
}

func decodeAt(ctx context.Context, n *Node, v any, path string) (any, error) {
	if n.name != "" {
		if b, ok := LookupBrand(n.name); ok {
			if b.Recognize != nil && b.Recognize(v) {
				return v, nil
			}
			dv, err := b.Decode(ctx, v)
			if err != nil {
				return nil, issuesAt(err, path)
			}
			return dv, nil
		}
		// Unregistered names fall through to structural decoding.
	}

	switch n.kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected string"}}
		}
		return s, nil
	case KindNumber:
		f, ok := toFloat64(v)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected number"}}
		}
		return f, nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected bool"}}
		}
		return b, nil
	case KindArray:
		arr, ok := v.([]any)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected array"}}
		}
		out := make([]any, 0, len(arr))
		var iss Issues
		for i, el := range arr {
			dv, err := decodeAt(ctx, n.elem, el, childPath(path, strconv.Itoa(i)))
			if err != nil {
				iss = appendErr(iss, err)
				continue
			}
			out = append(out, dv)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	case KindInterface, KindPartial, KindExact:
		return decodeStruct(ctx, n, v, path)
	case KindRefinement:
		dv, err := decodeAt(ctx, n.inner, v, path)
		if err != nil {
			return nil, err
		}
		if n.pred != nil && !n.pred(dv) {
			return nil, Issues{{Path: path, Code: CodeRefinement, Message: "value rejected by refinement"}}
		}
		return dv, nil
	default:
		return nil, Issues{{Path: path, Code: CodeUnsupportedKind, Message: "cannot decode kind " + n.kind.String()}}
	}
}

func decodeStruct(ctx context.Context, n *Node, v any, path string) (any, error) {
	fields, err := n.Fields()
	if err != nil {
		return nil, issuesAt(err, path)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected object"}}
	}
	// Required-ness follows the unwrapped struct kind: exact(interface) keeps
	// every field required, exact(partial) keeps them optional.
	required := n.kind == KindInterface || (n.kind == KindExact && n.inner != nil && n.inner.kind == KindInterface)

	out := make(map[string]any, len(fields))
	var iss Issues
	for _, f := range fields {
		fv, present := m[f.Name]
		if !present {
			if required {
				iss = append(iss, Issue{Path: childPath(path, f.Name), Code: CodeRequired, Message: "missing required field"})
			}
			continue
		}
		dv, err := decodeAt(ctx, f.Node, fv, childPath(path, f.Name))
		if err != nil {
			iss = appendErr(iss, err)
			continue
		}
		out[f.Name] = dv
	}
	if n.kind == KindExact {
		known := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			known[f.Name] = struct{}{}
		}
		for k := range m {
			if _, ok := known[k]; !ok {
				iss = append(iss, Issue{Path: childPath(path, k), Code: CodeUnknownKey, Message: "unknown key"})
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// toFloat64 accepts the numeric representations JSON sources hand us.
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
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func childPath(base, seg string) string {
	if base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}

func appendErr(dst Issues, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return append(dst, iss...)
	}
	return append(dst, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}
