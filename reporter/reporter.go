package reporter

import (
	"fmt"
	"math/big"
	"time"

	"github.com/qfactor/QFactor-core/shor"
)

type Reporter interface {
	Print()
}

func New(res *shor.Result, elapsed time.Duration) Reporter {
	r := reporter{
		result:  res,
		elapsed: elapsed,
	}
	return &r
}

type reporter struct {
	result  *shor.Result
	elapsed time.Duration
}

// outcomeOrder fixes the printing order of the discard tallies.
var outcomeOrder = []shor.Outcome{
	shor.OutcomeLuckyGCD,
	shor.OutcomeNoPeriod,
	shor.OutcomeOddPeriod,
	shor.OutcomeDegenerate,
	shor.OutcomeTrivial,
	shor.OutcomeFactored,
}

func (r *reporter) tally() map[shor.Outcome]int {
	counts := make(map[shor.Outcome]int)
	for _, at := range r.result.Attempts {
		counts[at.Outcome]++
	}
	return counts
}

func (r *reporter) Print() {
	res := r.result
	fmt.Printf("N = %s\n", res.N)
	fmt.Printf("Bases tried: %d\n", len(res.Attempts))

	counts := r.tally()
	for _, o := range outcomeOrder {
		if c := counts[o]; c > 0 {
			fmt.Printf("  %-16s %d\n", o, c)
		}
	}

	if res.P != nil && res.Q != nil {
		product := new(big.Int).Mul(res.P, res.Q)
		fmt.Printf("Factors: %s * %s = %s\n", res.P, res.Q, product)
	} else {
		fmt.Println("Factors: none found")
	}
	fmt.Printf("Elapsed: %v\n", r.elapsed)
}
