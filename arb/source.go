package arb

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Source supplies the random primitives the generator draws from.
// Implementations must be safe for concurrent use, or access must be
// serialized by the caller.
type Source interface {
	// Bool returns a random boolean.
	Bool() bool
	// IntN returns a random int in [0, n).
	IntN(n int) int
	// Float64Range returns a random float64 in [min, max).
	Float64Range(min, max float64) float64
	// Float2 returns a random float64 in [min, max) rounded to two decimals.
	Float2(min, max float64) float64
	// String returns a random printable string with length in [1, maxLen].
	String(maxLen int) string
	// PastTime returns a random instant in the past.
	PastTime() time.Time
	// UUID returns a random version-4 UUID string.
	UUID() string
}

// DefaultSource returns the process-wide source backed by math/rand/v2's
// shared generator, which is safe for concurrent use.
func DefaultSource() Source { return defaultSource{} }

type defaultSource struct{}

const printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_."

// pastWindow bounds how far back PastTime reaches.
const pastWindow = 10 * 365 * 24 * time.Hour

func (defaultSource) Bool() bool     { return rand.IntN(2) == 1 }
func (defaultSource) IntN(n int) int { return rand.IntN(n) }

func (defaultSource) Float64Range(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func (defaultSource) Float2(min, max float64) float64 {
	return round2(min + rand.Float64()*(max-min))
}

func (defaultSource) String(maxLen int) string {
	return printableString(rand.IntN, maxLen)
}

func (defaultSource) PastTime() time.Time {
	back := time.Duration(rand.Int64N(int64(pastWindow)))
	return time.Now().UTC().Add(-back).Truncate(time.Second)
}

func (defaultSource) UUID() string { return uuid.NewString() }

// NewSeededSource returns a deterministic Source for tests. It is not safe
// for concurrent use.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

type seededSource struct{ r *rand.Rand }

func (s *seededSource) Bool() bool     { return s.r.IntN(2) == 1 }
func (s *seededSource) IntN(n int) int { return s.r.IntN(n) }

func (s *seededSource) Float64Range(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

func (s *seededSource) Float2(min, max float64) float64 {
	return round2(min + s.r.Float64()*(max-min))
}

func (s *seededSource) String(maxLen int) string {
	return printableString(s.r.IntN, maxLen)
}

func (s *seededSource) PastTime() time.Time {
	back := time.Duration(s.r.Int64N(int64(pastWindow)))
	return time.Now().UTC().Add(-back).Truncate(time.Second)
}

func (s *seededSource) UUID() string {
	u, err := uuid.NewRandomFromReader(randReader{s.r})
	if err != nil {
		// randReader never fails; keep the invariant visible.
		panic(err)
	}
	return u.String()
}

type randReader struct{ r *rand.Rand }

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.UintN(256))
	}
	return len(p), nil
}

func printableString(intN func(int) int, maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}
	n := 1 + intN(maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = printable[intN(len(printable))]
	}
	return string(b)
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
