package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Generator creates passwords from a randomness source.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the crypto/rand backed source.
// Nil sources are ignored.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(cryptoSource{})}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a password of exactly length characters.
// See the package documentation for the length precondition.
func (g *Generator) Generate(length int, includeSpecial bool) string {
	if length <= 0 {
		return ""
	}

	sets := classes(includeSpecial)
	pool := Pool(includeSpecial)
	buf := make([]byte, 0, max(length, len(sets)))

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, set := range sets {
		buf = append(buf, set[g.rng.IntN(len(set))])
	}
	for len(buf) < length {
		buf = append(buf, pool[g.rng.IntN(len(pool))])
	}
	g.rng.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return string(buf[:length])
}

var std = New()

// Generate returns a password using the package default generator.
func Generate(length int, includeSpecial bool) string {
	return std.Generate(length, includeSpecial)
}

// cryptoSource adapts crypto/rand to rand.Source.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
