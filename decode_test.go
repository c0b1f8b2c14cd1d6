package genskema_test

import (
	"context"
	"testing"

	genskema "github.com/reoring/genskema"
)

func TestDecode_Scalars(t *testing.T) {
	ctx := context.Background()

	v, err := genskema.Decode(ctx, genskema.String(), "hello")
	if err != nil || v != "hello" {
		t.Fatalf("string decode: v=%v err=%v", v, err)
	}
	if _, err := genskema.Decode(ctx, genskema.String(), 1); err == nil {
		t.Fatalf("expected invalid_type for non-string")
	}

	v, err = genskema.Decode(ctx, genskema.Number(), 12.5)
	if err != nil || v != 12.5 {
		t.Fatalf("number decode: v=%v err=%v", v, err)
	}
	if v, err = genskema.Decode(ctx, genskema.Number(), 3); err != nil || v != 3.0 {
		t.Fatalf("int input should decode as number: v=%v err=%v", v, err)
	}

	if v, err = genskema.Decode(ctx, genskema.Bool(), true); err != nil || v != true {
		t.Fatalf("bool decode: v=%v err=%v", v, err)
	}
}

func TestDecode_ArrayPaths(t *testing.T) {
	ctx := context.Background()
	n := genskema.Array(genskema.String())

	v, err := genskema.Decode(ctx, n, []any{"a", "b"})
	if err != nil {
		t.Fatalf("array decode err: %v", err)
	}
	if arr := v.([]any); len(arr) != 2 || arr[0] != "a" {
		t.Fatalf("unexpected array: %v", arr)
	}

	_, err = genskema.Decode(ctx, n, []any{"a", 2, 3})
	iss, ok := genskema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	if iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("unexpected paths: %v %v", iss[0].Path, iss[1].Path)
	}
}

func TestDecode_InterfaceRequiresFields(t *testing.T) {
	ctx := context.Background()
	n := genskema.Interface(
		genskema.F("a", genskema.String()),
		genskema.F("b", genskema.Number()),
	)

	v, err := genskema.Decode(ctx, n, map[string]any{"a": "x", "b": 1.0})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	m := v.(map[string]any)
	if len(m) != 2 || m["a"] != "x" || m["b"] != 1.0 {
		t.Fatalf("unexpected value: %v", m)
	}

	_, err = genskema.Decode(ctx, n, map[string]any{"a": "x"})
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Code != genskema.CodeRequired || iss[0].Path != "/b" {
		t.Fatalf("expected required at /b, got %v", err)
	}
}

func TestDecode_PartialSkipsMissing(t *testing.T) {
	ctx := context.Background()
	n := genskema.Partial(
		genskema.F("a", genskema.String()),
		genskema.F("b", genskema.Number()),
	)
	v, err := genskema.Decode(ctx, n, map[string]any{"a": "x"})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	m := v.(map[string]any)
	if len(m) != 1 || m["a"] != "x" {
		t.Fatalf("unexpected value: %v", m)
	}
}

func TestDecode_ExactRejectsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	n := genskema.Exact(genskema.Interface(genskema.F("x", genskema.Bool())))

	if _, err := genskema.Decode(ctx, n, map[string]any{"x": true}); err != nil {
		t.Fatalf("decode err: %v", err)
	}

	_, err := genskema.Decode(ctx, n, map[string]any{"x": true, "y": 1})
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Code != genskema.CodeUnknownKey || iss[0].Path != "/y" {
		t.Fatalf("expected unknown_key at /y, got %v", err)
	}
}

func TestDecode_NestedPaths(t *testing.T) {
	ctx := context.Background()
	n := genskema.Interface(
		genskema.F("items", genskema.Array(genskema.Interface(
			genskema.F("price", genskema.Number()),
		))),
	)
	_, err := genskema.Decode(ctx, n, map[string]any{
		"items": []any{
			map[string]any{"price": 1.0},
			map[string]any{"price": "oops"},
		},
	})
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Path != "/items/1/price" {
		t.Fatalf("expected issue at /items/1/price, got %v", err)
	}
}

func TestDecode_Refinement(t *testing.T) {
	ctx := context.Background()
	positive := genskema.Refine(genskema.Number(), func(v any) bool {
		f, ok := v.(float64)
		return ok && f > 0
	})

	if v, err := genskema.Decode(ctx, positive, 5.0); err != nil || v != 5.0 {
		t.Fatalf("refined decode: v=%v err=%v", v, err)
	}
	_, err := genskema.Decode(ctx, positive, -5.0)
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Code != genskema.CodeRefinement {
		t.Fatalf("expected refinement issue, got %v", err)
	}
}

func TestDecode_UnsupportedKinds(t *testing.T) {
	ctx := context.Background()
	for _, n := range []*genskema.Node{
		genskema.Unknown(),
		genskema.Void(),
		genskema.Null(),
		genskema.KeyOf(genskema.Interface()),
		genskema.Literal("a"),
		genskema.Record(genskema.String()),
		genskema.Tuple(genskema.String()),
		genskema.Union(genskema.String(), genskema.Number()),
		genskema.Intersection(genskema.Interface(), genskema.Interface()),
	} {
		_, err := genskema.Decode(ctx, n, "anything")
		iss, ok := genskema.AsIssues(err)
		if !ok || iss[0].Code != genskema.CodeUnsupportedKind {
			t.Fatalf("kind %v: expected unsupported_kind, got %v", n.Kind(), err)
		}
	}
}

func TestEncode_Structural(t *testing.T) {
	ctx := context.Background()
	n := genskema.Interface(
		genskema.F("a", genskema.String()),
		genskema.F("b", genskema.Array(genskema.Number())),
	)
	domain := map[string]any{"a": "x", "b": []any{1.0, 2.0}, "extra": true}
	v, err := genskema.Encode(ctx, n, domain)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	m := v.(map[string]any)
	if len(m) != 2 {
		t.Fatalf("canonical encode must drop undeclared fields: %v", m)
	}
}

func TestEncode_RefinementChecksPredicate(t *testing.T) {
	ctx := context.Background()
	positive := genskema.Refine(genskema.Number(), func(v any) bool {
		f, ok := v.(float64)
		return ok && f > 0
	})
	if _, err := genskema.Encode(ctx, positive, -1.0); err == nil {
		t.Fatalf("expected refinement error on encode")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := genskema.Issues{
		{Path: "/a", Code: genskema.CodeInvalidType},
		{Path: "/b", Code: genskema.CodeUnknownKey},
		{Path: "/c", Code: genskema.CodeRequired},
		{Path: "/d", Code: genskema.CodeRefinement},
	}
	if iss.Error() == "" {
		t.Fatalf("expected non-empty error summary")
	}
}
