// Package identifier derives human-readable participant IDs from sequence
// counter values.
package identifier

import (
	"fmt"
	"math/rand/v2"
)

const (
	// Prefix is the fixed event code every participant ID starts with.
	Prefix = "WBKON56"

	// SoftSequenceLimit is the point past which callers should warn: the ID
	// format budgets two digits for the sequence, and while larger values
	// widen rather than truncate, they break the fixed-width assumption.
	SoftSequenceLimit = 550
)

const alphabets = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Generator struct {
	intN func(n int) int
}

func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// NewWithRand injects the random source; tests use it to pin the suffix.
func NewWithRand(intN func(n int) int) *Generator {
	return &Generator{intN: intN}
}

// Generate formats a participant ID from a post-increment sequence value:
// prefix, zero-padded 2-digit sequence, one random uppercase letter, one
// random digit 1-9. The random suffix is a best-effort salt only; full-ID
// uniqueness is enforced by the store's unique index, and callers retry
// with a fresh suffix on collision.
func (g *Generator) Generate(seq int64) string {
	return fmt.Sprintf("%s%02d%c%d",
		Prefix,
		seq,
		alphabets[g.intN(len(alphabets))],
		g.intN(9)+1,
	)
}
