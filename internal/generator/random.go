package generator

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
)

// Source names accepted by NewRand.
const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

var ErrUnknownSource = errors.New("unknown random source")

// Rand is the source of uniform draws used by the pool builder and the
// synthesizer. IntN returns a value in [0, n) and panics if n <= 0.
type Rand interface {
	IntN(n int) int
}

// DefaultRand returns the general-purpose generator. It is safe for
// concurrent use and makes no cryptographic claims.
func DefaultRand() Rand {
	return globalRand{}
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRand returns a deterministic PCG source. Equal seeds yield equal
// sequences. The returned source is safe for concurrent use, although
// interleaved callers will observe an interleaved sequence.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// CryptoRand returns a source backed by crypto/rand.
func CryptoRand() Rand {
	return cryptoRand{}
}

type cryptoRand struct{}

func (cryptoRand) IntN(n int) int {
	if n <= 0 {
		panic("generator: invalid argument to IntN")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic(fmt.Sprintf("generator: reading crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// NewRand resolves a configured source. A non-zero seed always selects the
// seeded source regardless of name.
func NewRand(source string, seed uint64) (Rand, error) {
	if seed != 0 {
		return NewSeededRand(seed), nil
	}
	switch source {
	case "", SourceMath:
		return DefaultRand(), nil
	case SourceCrypto:
		return CryptoRand(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
}
