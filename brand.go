package genskema

import (
	"context"
	"sync"
)

// Reserved brand names with built-in implementations under codec/.
const (
	NameUUID               = "uuid"
	NameDateFromISOString  = "date-from-iso-string"
	NameCurrencyFromNumber = "currency-from-number"
)

// Brand describes a named codec: a wire-shape/domain-shape pair keyed by a
// stable identity, dispatched ahead of the node's structural kind.
type Brand struct {
	// Name is the identity checked against Node.Name().
	Name string
	// Recognize reports whether v is already in domain shape, in which case
	// Decode is skipped.
	Recognize func(v any) bool
	// Decode validates and converts a wire-shape value into domain shape.
	Decode func(ctx context.Context, wire any) (any, error)
	// Encode converts a domain-shape value back to wire shape. It is total
	// for values Decode can produce; it fails only on type mismatch.
	Encode func(ctx context.Context, domain any) (any, error)
}

var (
	brandMu sync.RWMutex
	brands  = map[string]Brand{}
)

// RegisterBrand installs b into the process-wide registry. Built-in brands
// register themselves from codec/ at init; later registrations under the same
// name replace earlier ones.
func RegisterBrand(b Brand) {
	brandMu.Lock()
	defer brandMu.Unlock()
	brands[b.Name] = b
}

// LookupBrand returns the registered brand for name.
func LookupBrand(name string) (Brand, bool) {
	brandMu.RLock()
	defer brandMu.RUnlock()
	b, ok := brands[name]
	return b, ok
}
