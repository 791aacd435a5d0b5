package shor

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// BaseSource supplies one candidate base in [2, n-1] per retry. The core
// only relies on that range contract, not on any particular distribution.
type BaseSource func(n *big.Int) (*big.Int, error)

var ErrBaseSourceExhausted = errors.New("base source exhausted")

var bigTwo = big.NewInt(2)

// CryptoRandSource draws bases uniformly from [2, n-1] using crypto/rand.
func CryptoRandSource() BaseSource {
	return func(n *big.Int) (*big.Int, error) {
		// rand.Int samples [0, n-2); shift into [2, n-1).
		width := new(big.Int).Sub(n, bigTwo)
		if width.Sign() <= 0 {
			return nil, ErrBaseSourceExhausted
		}
		a, err := rand.Int(rand.Reader, width)
		if err != nil {
			return nil, err
		}
		return a.Add(a, bigTwo), nil
	}
}

// SequenceSource replays the given bases in order and fails once they run
// out. It exists so tests can steer the orchestrator down every branch.
func SequenceSource(bases ...*big.Int) BaseSource {
	i := 0
	return func(n *big.Int) (*big.Int, error) {
		if i >= len(bases) {
			return nil, ErrBaseSourceExhausted
		}
		a := bases[i]
		i++
		return a, nil
	}
}
