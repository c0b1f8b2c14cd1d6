// Package arb generates pseudo-random wire-shape values that conform to
// genskema nodes, so that Decode(Generate(n), n) succeeds for every supported
// node. It is deterministic in type shape and non-deterministic in content;
// there is no seeding or replay guarantee on the default source.
package arb

import (
	"time"

	genskema "github.com/reoring/genskema"
)

// maxRefineAttempts caps refinement retries before the generator gives up
// with a refine_exhausted issue.
const maxRefineAttempts = 100

// arrayMaxLen bounds generated array lengths (exclusive); zero-length arrays
// are an expected outcome.
const arrayMaxLen = 10

// stringMaxLen bounds generated string lengths.
const stringMaxLen = 16

// numberAbsMax bounds the magnitude of generated plain numbers.
const numberAbsMax = 1e6

// NamedFunc produces the wire-shape value for a brand name. It must emit the
// shape the brand's Decode accepts, not the decoded domain shape.
type NamedFunc func(src Source) any

// Generator produces values conforming to schema nodes. Named dispatch is
// consulted before structural dispatch, so registrations here win over the
// node's kind. A Generator is safe for concurrent use once construction and
// RegisterNamed calls are done, provided its Source is.
type Generator struct {
	src   Source
	named map[string]NamedFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source. Inject NewSeededSource in tests.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// New returns a Generator with the reserved brand names pre-registered:
// date-from-iso-string emits a full ISO-8601 timestamp, uuid a v4 UUID
// string, currency-from-number a two-decimal float.
func New(opts ...Option) *Generator {
	g := &Generator{src: DefaultSource(), named: make(map[string]NamedFunc)}
	g.RegisterNamed(genskema.NameDateFromISOString, func(src Source) any {
		return src.PastTime().Format(time.RFC3339)
	})
	g.RegisterNamed(genskema.NameUUID, func(src Source) any {
		return src.UUID()
	})
	g.RegisterNamed(genskema.NameCurrencyFromNumber, func(src Source) any {
		return src.Float2(0, 10000)
	})
	for _, o := range opts {
		o(g)
	}
	return g
}

// RegisterNamed installs a generator for a brand name. Not safe to call
// concurrently with Generate.
func (g *Generator) RegisterNamed(name string, fn NamedFunc) {
	g.named[name] = fn
}

// Generate returns a wire-shape value the decoder accepts for n.
func (g *Generator) Generate(n *genskema.Node) (any, error) {
	if name := n.Name(); name != "" {
		if fn, ok := g.named[name]; ok {
			return fn(g.src), nil
		}
		// Unregistered names fall through to structural generation, mirroring
		// the decoder.
	}

	switch n.Kind() {
	case genskema.KindString:
		return g.src.String(stringMaxLen), nil
	case genskema.KindNumber:
		return g.src.Float64Range(-numberAbsMax, numberAbsMax), nil
	case genskema.KindBool:
		return g.src.Bool(), nil
	case genskema.KindArray:
		count := g.src.IntN(arrayMaxLen)
		out := make([]any, 0, count)
		for i := 0; i < count; i++ {
			v, err := g.Generate(n.Elem())
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case genskema.KindInterface, genskema.KindPartial, genskema.KindExact:
		fields, err := n.Fields()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			v, err := g.Generate(f.Node)
			if err != nil {
				return nil, err
			}
			out[f.Name] = v
		}
		return out, nil
	case genskema.KindRefinement:
		pred := n.Predicate()
		for attempt := 0; attempt < maxRefineAttempts; attempt++ {
			v, err := g.Generate(n.Inner())
			if err != nil {
				return nil, err
			}
			if pred == nil || pred(v) {
				return v, nil
			}
		}
		return nil, genskema.Issues{{Path: "/", Code: genskema.CodeRefineExhausted, Message: "refinement predicate rejected every candidate"}}
	default:
		return nil, genskema.Issues{{Path: "/", Code: genskema.CodeUnsupportedKind, Message: "cannot generate kind " + n.Kind().String()}}
	}
}

// defaultGenerator backs the package-level Generate. Its named table is never
// mutated after init, so concurrent Generate calls are safe.
var defaultGenerator = New()

// Generate produces a value for n using the process-wide default source.
func Generate(n *genskema.Node) (any, error) {
	return defaultGenerator.Generate(n)
}
