package genskema

import (
	"context"
	"strconv"
)

// Encode converts a domain-shape value back into the wire shape described by
// n. It mirrors Decode: brand names first, then structural dispatch. Encoding
// is canonical: only declared fields are emitted.
func Encode(ctx context.Context, n *Node, domain any) (any, error) {
	return encodeAt(ctx, n, domain, "/")
}

func encodeAt(ctx context.Context, n *Node, v any, path string) (any, error) {
	if n.name != "" {
		if b, ok := LookupBrand(n.name); ok {
			ev, err := b.Encode(ctx, v)
			if err != nil {
				return nil, issuesAt(err, path)
			}
			return ev, nil
		}
	}

	switch n.kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected string"}}
		}
		return v, nil
	case KindNumber:
		f, ok := toFloat64(v)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected number"}}
		}
		return f, nil
	case KindBool:
		if _, ok := v.(bool); !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected bool"}}
		}
		return v, nil
	case KindArray:
		arr, ok := v.([]any)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected array"}}
		}
		out := make([]any, 0, len(arr))
		for i, el := range arr {
			ev, err := encodeAt(ctx, n.elem, el, childPath(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	case KindInterface, KindPartial, KindExact:
		fields, err := n.Fields()
		if err != nil {
			return nil, issuesAt(err, path)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "expected object"}}
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			fv, present := m[f.Name]
			if !present {
				continue
			}
			ev, err := encodeAt(ctx, f.Node, fv, childPath(path, f.Name))
			if err != nil {
				return nil, err
			}
			out[f.Name] = ev
		}
		return out, nil
	case KindRefinement:
		if n.pred != nil && !n.pred(v) {
			return nil, Issues{{Path: path, Code: CodeRefinement, Message: "value rejected by refinement"}}
		}
		return encodeAt(ctx, n.inner, v, path)
	default:
		return nil, Issues{{Path: path, Code: CodeUnsupportedKind, Message: "cannot encode kind " + n.kind.String()}}
	}
}
