package identifier

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^WBKON56\d{2}[A-Z][1-9]$`)

	g := New()
	for seq := int64(0); seq <= 99; seq++ {
		id := g.Generate(seq)
		assert.Regexp(t, re, id, "sequence %d", seq)
	}
}

func TestGenerateSuffixPinned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  int64
		intN func(n int) int
		want string
	}{
		{
			name: "zero sequence, first letter, lowest digit",
			seq:  0,
			intN: func(n int) int { return 0 },
			want: "WBKON5600A1",
		},
		{
			name: "single digit sequence is zero padded",
			seq:  7,
			intN: func(n int) int { return n - 1 },
			want: "WBKON5607Z9",
		},
		{
			name: "two digit sequence",
			seq:  42,
			intN: func(n int) int { return 3 },
			want: "WBKON5642D4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewWithRand(tt.intN)
			assert.Equal(t, tt.want, g.Generate(tt.seq))
		})
	}
}

func TestGenerateWidensPastTwoDigits(t *testing.T) {
	t.Parallel()

	g := NewWithRand(func(n int) int { return 0 })

	// Sequences beyond the 2-digit budget must widen, never truncate.
	id := g.Generate(123)
	require.Equal(t, "WBKON56123A1", id)

	id = g.Generate(int64(SoftSequenceLimit) + 1)
	require.Equal(t, fmt.Sprintf("WBKON56%dA1", SoftSequenceLimit+1), id)
}
