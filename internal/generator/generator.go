// Package generator synthesizes passwords from character classes and scores
// their strength.
package generator

const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 12

	// NoClassesSelected is returned in place of a password when no character
	// class is enabled. Callers must check for it (see IsPassword) before
	// offering the result for copying.
	NoClassesSelected = "Select at least one character type."
)

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(MaxLength, n))
}

// IsPassword reports whether s is a generated password rather than the
// empty-selection placeholder.
func IsPassword(s string) bool {
	return s != "" && s != NoClassesSelected
}

// Generator produces passwords using an injected random source.
type Generator struct {
	rng Rand
}

// New creates a Generator. A nil rng selects DefaultRand.
func New(rng Rand) *Generator {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Generator{rng: rng}
}

// Synthesize returns a password of exactly length characters (after
// clamping) containing at least one character of every enabled class, or
// NoClassesSelected when classes is empty.
func (g *Generator) Synthesize(length int, classes ClassSet) string {
	pool, mandatory := BuildPool(g.rng, classes)
	if pool == "" {
		return NoClassesSelected
	}
	return compose(g.rng, ClampLength(length), pool, mandatory)
}

// compose fills the mandatory picks up to length from pool and shuffles the
// result. When there are more mandatory picks than length, only the first
// length picks are kept.
func compose(rng Rand, length int, pool string, mandatory []byte) string {
	if len(mandatory) > length {
		mandatory = mandatory[:length]
	}

	result := make([]byte, 0, length)
	result = append(result, mandatory...)
	for len(result) < length {
		result = append(result, randChar(rng, pool))
	}

	shuffle(rng, result)
	return string(result)
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(rng Rand, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
