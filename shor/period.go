package shor

import (
	"math/big"

	"github.com/qfactor/QFactor-core/modmath"
)

// tickEvery throttles OnPeriodTick so progress reporting stays off the
// scan's hot path.
const tickEvery = 1024

// FindPeriodClassical returns the multiplicative order of a modulo n: the
// least r >= 1 with a^r ≡ 1 (mod n). The search tries every exponent up to
// ceiling (pass n when in doubt; no order exceeds it) and reports
// ErrNoPeriod past the bound, which happens exactly when gcd(a, n) > 1.
//
// This is an O(n) scan on purpose. It stands in for the quantum
// period-finding subroutine and is the bottleneck that subroutine would
// remove; resist the urge to shortcut it.
func FindPeriodClassical(a, n, ceiling *big.Int) (*big.Int, error) {
	return findPeriod(a, n, ceiling, nil)
}

func findPeriod(a, n, ceiling *big.Int, tick func(done, bound uint64)) (*big.Int, error) {
	// Non-units have no finite order; skip the full scan the way the
	// original preprocessing does.
	if !modmath.Coprime(a, n) {
		return nil, ErrNoPeriod
	}

	var bound uint64
	if ceiling.IsUint64() {
		bound = ceiling.Uint64()
	}

	k := big.NewInt(1)
	var done uint64
	for k.Cmp(ceiling) <= 0 {
		if modmath.ModPow(a, k, n).Cmp(bigOne) == 0 {
			return k, nil
		}
		k.Add(k, bigOne)

		done++
		if tick != nil && done%tickEvery == 0 {
			tick(done, bound)
		}
	}
	return nil, ErrNoPeriod
}
