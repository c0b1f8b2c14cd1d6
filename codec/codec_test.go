package codec_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	genskema "github.com/reoring/genskema"
	"github.com/reoring/genskema/codec"
)

func TestUUID_IdentityDecode(t *testing.T) {
	b := codec.UUID()
	ctx := context.Background()

	// no format check beyond the string assertion
	v, err := b.Decode(ctx, "not-even-a-uuid")
	if err != nil || v != "not-even-a-uuid" {
		t.Fatalf("uuid decode: v=%v err=%v", v, err)
	}
	if _, err := b.Decode(ctx, 42); err == nil {
		t.Fatalf("expected invalid_type for non-string")
	}
	if !b.Recognize("abc") || b.Recognize(42) {
		t.Fatalf("recognize must accept strings only")
	}
}

func TestDateFromISOString_DecodeAcceptsFullISO(t *testing.T) {
	b := codec.DateFromISOString()
	ctx := context.Background()

	for _, in := range []string{
		"2025-01-01T10:30:00Z",
		"2025-01-01T10:30:00.123Z",
		"2025-01-01T10:30:00+09:00",
		"2025-01-01",
	} {
		if _, err := b.Decode(ctx, in); err != nil {
			t.Fatalf("decode %q err: %v", in, err)
		}
	}
	_, err := b.Decode(ctx, "not a date")
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Code != genskema.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestDateFromISOString_EncodeEmitsDateOnly(t *testing.T) {
	b := codec.DateFromISOString()
	ctx := context.Background()

	wire := "2025-06-15T18:45:12Z"
	dv, err := b.Decode(ctx, wire)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	out, err := b.Encode(ctx, dv)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2025-06-15" {
		t.Fatalf("expected date-only output, got %v", out)
	}
	// encode is narrower than decode: the time-of-day component is dropped
	if out == wire {
		t.Fatalf("encode output must differ from a wire value carrying time-of-day")
	}
}

func TestDateFromISOString_RecognizeDomainShape(t *testing.T) {
	b := codec.DateFromISOString()
	if !b.Recognize(time.Now()) || b.Recognize("2025-01-01") {
		t.Fatalf("recognize must accept time.Time only")
	}
}

func TestCurrencyFromNumber_Decode(t *testing.T) {
	b := codec.CurrencyFromNumber()
	ctx := context.Background()

	v, err := b.Decode(ctx, 19.99)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	d := v.(decimal.Decimal)
	if !d.Equal(decimal.NewFromFloat(19.99)) {
		t.Fatalf("unexpected decimal: %v", d)
	}

	if _, err := b.Decode(ctx, "19.99"); err == nil {
		t.Fatalf("expected invalid_type for string input")
	}
}

func TestCurrencyFromNumber_EncodeLossyFloat(t *testing.T) {
	b := codec.CurrencyFromNumber()
	ctx := context.Background()

	out, err := b.Encode(ctx, decimal.NewFromFloat(12.34))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if f := out.(float64); f != 12.34 {
		t.Fatalf("unexpected float: %v", f)
	}
	if _, err := b.Encode(ctx, "12.34"); err == nil {
		t.Fatalf("expected invalid_type for non-decimal")
	}
}

func TestBrandedDecode_ThroughNodeTree(t *testing.T) {
	ctx := context.Background()
	n := genskema.Interface(
		genskema.F("createdAt", genskema.Named(genskema.NameDateFromISOString, genskema.String())),
		genskema.F("total", genskema.Named(genskema.NameCurrencyFromNumber, genskema.Number())),
	)
	v, err := genskema.Decode(ctx, n, map[string]any{
		"createdAt": "2025-02-03T04:05:06Z",
		"total":     100.5,
	})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	m := v.(map[string]any)
	if _, ok := m["createdAt"].(time.Time); !ok {
		t.Fatalf("createdAt should decode to time.Time, got %T", m["createdAt"])
	}
	if _, ok := m["total"].(decimal.Decimal); !ok {
		t.Fatalf("total should decode to decimal.Decimal, got %T", m["total"])
	}

	// failures surface with the field path, not the brand-local root
	_, err = genskema.Decode(ctx, n, map[string]any{
		"createdAt": "nope",
		"total":     1.0,
	})
	iss, ok := genskema.AsIssues(err)
	if !ok || iss[0].Path != "/createdAt" {
		t.Fatalf("expected issue at /createdAt, got %v", err)
	}
}

func TestBrandedDecode_RecognizeSkipsDecode(t *testing.T) {
	ctx := context.Background()
	n := genskema.Named(genskema.NameDateFromISOString, genskema.String())
	now := time.Now().UTC()
	v, err := genskema.Decode(ctx, n, now)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !v.(time.Time).Equal(now) {
		t.Fatalf("already-domain value must pass through unchanged")
	}
}
