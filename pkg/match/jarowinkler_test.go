package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaroWinkler(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "solana ai agent hackathon",
			b:    "solana ai agent hackathon",
			want: 1,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1,
		},
		{
			name: "one empty",
			a:    "hackathon",
			b:    "",
			want: 0,
		},
		{
			name: "no characters in common",
			a:    "abc",
			b:    "xyz",
			want: 0,
		},
		{
			name: "classic martha marhta",
			a:    "martha",
			b:    "marhta",
			want: 0.9611,
		},
		{
			name: "classic dwayne duane",
			a:    "dwayne",
			b:    "duane",
			want: 0.84,
		},
		{
			name: "near-identical event names",
			a:    "ai agent hack 2026",
			b:    "ai agent hackathon 2026",
			want: 0.9565,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaroWinkler(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestJaroWinklerSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"martha", "marhta"},
		{"ai agent hack 2026", "ai agent hackathon 2026"},
		{"eth global paris", "ethglobal paris"},
		{"a", "abcdefgh"},
	}
	for _, p := range pairs {
		assert.Equal(t, JaroWinkler(p[0], p[1]), JaroWinkler(p[1], p[0]),
			"JaroWinkler(%q, %q) should be symmetric", p[0], p[1])
	}
}

func TestJaroWinklerBounds(t *testing.T) {
	pairs := [][2]string{
		{"x", "y"},
		{"hackathon", "hackaton"},
		{"aaaa", "aaab"},
		{"short", "a much longer string entirely"},
	}
	for _, p := range pairs {
		got := JaroWinkler(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestJaroWinklerPrefixBoost(t *testing.T) {
	// Same edit distance from the base, but the shared prefix should score
	// higher than the shared suffix.
	withPrefix := JaroWinkler("hackathon", "hackathen")
	withoutPrefix := JaroWinkler("hackathon", "fackathon")
	assert.Greater(t, withPrefix, withoutPrefix)
}
