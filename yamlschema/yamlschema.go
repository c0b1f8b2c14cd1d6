// Package yamlschema imports OpenAPI-flavored schema documents into genskema
// nodes. The supported subset: type (string|number|integer|boolean|object|
// array|null), properties, required, items, format, and
// additionalProperties: false (which produces an exact node).
//
// format values uuid, date-iso and currency map to the reserved brand names;
// any other format carries over as a brand name verbatim, so custom brands
// registered at runtime can be referenced from documents.
//
// Unknown type values import as the matching unsupported node rather than
// failing here; rejection then happens at the defined generate/decode
// boundary.
package yamlschema

import (
	"errors"
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	genskema "github.com/reoring/genskema"
)

// ImportYAML converts a single-document YAML schema definition into a node.
func ImportYAML(data []byte) (*genskema.Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	m := anyToStringMap(doc)
	if m == nil {
		return nil, errors.New("yamlschema: document root must be a mapping")
	}
	return buildNode(m)
}

// ImportJSON converts a JSON schema definition into a node.
func ImportJSON(data []byte) (*genskema.Node, error) {
	var m map[string]any
	if err := gojson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return buildNode(m)
}

func buildNode(ps map[string]any) (*genskema.Node, error) {
	t, _ := ps["type"].(string)
	var n *genskema.Node
	switch t {
	case "string":
		n = genskema.String()
	case "number", "integer":
		n = genskema.Number()
	case "boolean":
		n = genskema.Bool()
	case "null":
		n = genskema.Null()
	case "array":
		items, ok := ps["items"].(map[string]any)
		if !ok {
			return nil, errors.New("yamlschema: array requires an items mapping")
		}
		elem, err := buildNode(items)
		if err != nil {
			return nil, err
		}
		n = genskema.Array(elem)
	case "object":
		built, err := buildObject(ps)
		if err != nil {
			return nil, err
		}
		n = built
	default:
		// Keep the node importable; generate/decode reject it with
		// unsupported_kind.
		n = genskema.Unknown()
	}
	if f, _ := ps["format"].(string); f != "" {
		n = genskema.Named(brandForFormat(f), n)
	}
	return n, nil
}

func buildObject(ps map[string]any) (*genskema.Node, error) {
	props, _ := ps["properties"].(map[string]any)
	// Map iteration order is random; sort names so imported field order is
	// stable across runs.
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]genskema.Field, 0, len(names))
	for _, name := range names {
		pm, ok := props[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("yamlschema: property %q must be a mapping", name)
		}
		fn, err := buildNode(pm)
		if err != nil {
			return nil, err
		}
		fields = append(fields, genskema.F(name, fn))
	}

	// The node model splits struct kinds into all-required (interface) and
	// all-optional (partial); a non-empty required list selects the former.
	var n *genskema.Node
	if req, _ := ps["required"].([]any); len(req) > 0 {
		n = genskema.Interface(fields...)
	} else {
		n = genskema.Partial(fields...)
	}
	if ap, ok := ps["additionalProperties"].(bool); ok && !ap {
		n = genskema.Exact(n)
	}
	return n, nil
}

func brandForFormat(f string) string {
	switch f {
	case "uuid":
		return genskema.NameUUID
	case "date-iso":
		return genskema.NameDateFromISOString
	case "currency":
		return genskema.NameCurrencyFromNumber
	default:
		return f
	}
}

// anyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
