package shor

import (
	"errors"
	"math/big"

	"github.com/qfactor/QFactor-core/modmath"
)

var (
	ErrInvalidModulus       = errors.New("modulus must be greater than 1")
	ErrNoPeriod             = errors.New("no period found within search ceiling")
	ErrRetryBudgetExhausted = errors.New("retry budget exhausted without finding a factor")
)

// DefaultMaxAttempts bounds the base-retry loop when the caller does not
// configure a budget. The loop is probabilistic, so exhausting it is a
// legitimate outcome rather than a bug.
const DefaultMaxAttempts = 64

type Config struct {
	// MaxAttempts is the retry budget: how many candidate bases may be
	// tried before giving up. 0 means DefaultMaxAttempts.
	MaxAttempts int

	// PeriodCeiling bounds the classical period scan. nil means n, which
	// always suffices since the order of any unit mod n is below n.
	PeriodCeiling *big.Int

	// BaseSource supplies candidate bases in [2, n-1]. nil means
	// CryptoRandSource(). Tests inject SequenceSource to drive branches
	// deterministically.
	BaseSource BaseSource

	// RealtimePrinter, when set, is invoked as each attempt resolves so a
	// front-end can show per-base progress without the core doing I/O.
	RealtimePrinter func(at Attempt)

	// OnPeriodTick, when set, is called periodically during the period
	// scan with the number of exponents tried and the scan bound
	// (0 when the bound does not fit uint64).
	OnPeriodTick func(done, bound uint64)
}

// Outcome classifies how a single base attempt ended.
type Outcome string

const (
	// OutcomeLuckyGCD: gcd(a, n) alone produced a factor, no period needed.
	OutcomeLuckyGCD Outcome = "lucky-gcd"
	// OutcomeNoPeriod: the scan hit its ceiling, base discarded.
	OutcomeNoPeriod Outcome = "no-period"
	// OutcomeOddPeriod: the period cannot be halved, base discarded.
	OutcomeOddPeriod Outcome = "odd-period"
	// OutcomeDegenerate: a^(r/2) ≡ -1 mod n, base discarded.
	OutcomeDegenerate Outcome = "degenerate-base"
	// OutcomeTrivial: both extracted divisors were 1 or n, base discarded.
	OutcomeTrivial Outcome = "trivial-factors"
	// OutcomeFactored: the half-period power yielded a non-trivial factor.
	OutcomeFactored Outcome = "factored"
)

// Attempt records one base trial for diagnostics.
type Attempt struct {
	Base    *big.Int `json:"base"`
	Period  *big.Int `json:"period,omitempty"`
	Outcome Outcome  `json:"outcome"`
}

// Result is the output of a factoring run. P*Q == N whenever err is nil.
type Result struct {
	N        *big.Int  `json:"n"`
	P        *big.Int  `json:"p"`
	Q        *big.Int  `json:"q"`
	Attempts []Attempt `json:"attempts,omitempty"`
}

func (r *Result) add(at Attempt, printer func(Attempt)) {
	r.Attempts = append(r.Attempts, at)
	if printer != nil {
		printer(at)
	}
}

// Factor finds two non-trivial factors of the composite n by classically
// simulating the arithmetic core of Shor's algorithm: even n splits
// immediately, otherwise random bases are tried until the period of one of
// them yields a factor or the retry budget runs out.
//
// The caller is responsible for n being composite; for a prime n every base
// is eventually discarded and Factor returns ErrRetryBudgetExhausted.
func Factor(n *big.Int, config Config) (*Result, error) {
	if n == nil || n.Cmp(bigOne) <= 0 {
		return nil, ErrInvalidModulus
	}

	if config.MaxAttempts == 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	if config.BaseSource == nil {
		config.BaseSource = CryptoRandSource()
	}
	ceiling := config.PeriodCeiling
	if ceiling == nil {
		ceiling = n
	}

	res := &Result{N: new(big.Int).Set(n)}

	// Classical preprocessing: even n never reaches the period machinery.
	if modmath.IsEven(n) {
		res.P = big.NewInt(2)
		res.Q = new(big.Int).Rsh(n, 1)
		return res, nil
	}

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		a, err := config.BaseSource(n)
		if err != nil {
			return res, err
		}

		// A base sharing a factor with n is a win by luck alone.
		if d := modmath.GCD(a, n); d.Cmp(bigOne) > 0 && d.Cmp(n) < 0 {
			res.add(Attempt{Base: a, Outcome: OutcomeLuckyGCD}, config.RealtimePrinter)
			res.P = d
			res.Q = new(big.Int).Div(n, d)
			return res, nil
		}

		r, err := findPeriod(a, n, ceiling, config.OnPeriodTick)
		if err != nil {
			res.add(Attempt{Base: a, Outcome: OutcomeNoPeriod}, config.RealtimePrinter)
			continue
		}

		if !modmath.IsEven(r) {
			res.add(Attempt{Base: a, Period: r, Outcome: OutcomeOddPeriod}, config.RealtimePrinter)
			continue
		}

		// x = a^(r/2) mod n. x ≡ -1 makes both gcd(x±1, n) trivial.
		x := modmath.ModPow(a, new(big.Int).Rsh(r, 1), n)
		nMinusOne := new(big.Int).Sub(n, bigOne)
		if x.Cmp(nMinusOne) == 0 {
			res.add(Attempt{Base: a, Period: r, Outcome: OutcomeDegenerate}, config.RealtimePrinter)
			continue
		}

		p, q, ok := extractFactors(x, n)
		if !ok {
			res.add(Attempt{Base: a, Period: r, Outcome: OutcomeTrivial}, config.RealtimePrinter)
			continue
		}

		res.add(Attempt{Base: a, Period: r, Outcome: OutcomeFactored}, config.RealtimePrinter)
		res.P = p
		res.Q = q
		return res, nil
	}

	return res, ErrRetryBudgetExhausted
}

// extractFactors derives a factor pair from the half-period power x via
// gcd(x-1, n) and gcd(x+1, n), preferring whichever is non-trivial.
func extractFactors(x, n *big.Int) (*big.Int, *big.Int, bool) {
	for _, delta := range []int64{-1, 1} {
		f := modmath.GCD(new(big.Int).Add(x, big.NewInt(delta)), n)
		if f.Cmp(bigOne) > 0 && f.Cmp(n) < 0 {
			return f, new(big.Int).Div(n, f), true
		}
	}
	return nil, nil, false
}

var bigOne = big.NewInt(1)
