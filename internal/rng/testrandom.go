package rng

import (
	"strconv"
	"strings"
	"sync"
)

// Linear congruential parameters (Numerical Recipes) and the fixed seed
// every binding starts from. The generator exists so share vectors can be
// reproduced across runs and platforms; it has no cryptographic strength
// and is never selected implicitly.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	testSeed      = 0x5eed
)

// testSource is the deterministic generator behind SourceTest.
type testSource struct {
	mu    sync.Mutex
	state uint32
}

// newTestSource returns a fresh generator seeded with testSeed, so every
// bind restarts the sequence.
func newTestSource() (Source, error) {
	g := &testSource{state: testSeed}
	return g.draw, nil
}

// next16 advances the state and returns its upper half, which has the
// longer period of the LCG's output bits.
func (g *testSource) next16() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state >> 16
}

func (g *testSource) draw(bits int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	for b.Len() < bits {
		expanded := strconv.FormatUint(uint64(g.next16()), 2)
		b.WriteString(strings.Repeat("0", 16-len(expanded)))
		b.WriteString(expanded)
	}
	s := b.String()
	return s[len(s)-bits:], nil
}
