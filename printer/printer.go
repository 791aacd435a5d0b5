package printer

import (
	"fmt"
	"math/big"
	"time"

	"github.com/fatih/color"

	"github.com/qfactor/QFactor-core/config"
	"github.com/qfactor/QFactor-core/shor"
)

var version = config.Version
var buildDate = config.BuildDate
var commitID = config.CommitID

func Version() {
	fmt.Fprintf(color.Output, "%s %s %s %s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("%s", "QFactor"),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", version),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", buildDate),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", commitID),
	)
}

// RealtimePrinter narrates one base attempt as it resolves. Wire it to
// shor.Config.RealtimePrinter for per-attempt console progress.
func RealtimePrinter(at shor.Attempt) {
	fmt.Fprintf(color.Output, "Trying a = %s\n",
		color.New(color.FgYellow, color.Bold).Sprintf("%s", at.Base))

	switch at.Outcome {
	case shor.OutcomeLuckyGCD:
		fmt.Fprintln(color.Output, "Found factor by gcd alone, no period needed")
	case shor.OutcomeNoPeriod:
		fmt.Fprintln(color.Output,
			color.New(color.FgHiBlack).Sprintf("Could not find a period for a = %s. Trying another 'a'.", at.Base))
	case shor.OutcomeOddPeriod:
		fmt.Fprintf(color.Output, "Found period r = %s\n%s\n", at.Period,
			color.New(color.FgHiBlack).Sprint("Period 'r' is odd. Trying another 'a'."))
	case shor.OutcomeDegenerate:
		fmt.Fprintf(color.Output, "Found period r = %s\n%s\n", at.Period,
			color.New(color.FgHiBlack).Sprint("a^(r/2) == -1 (mod n). Trying another 'a'."))
	case shor.OutcomeTrivial:
		fmt.Fprintf(color.Output, "Found period r = %s\n%s\n", at.Period,
			color.New(color.FgHiBlack).Sprint("Found trivial factors. Trying another 'a'."))
	case shor.OutcomeFactored:
		fmt.Fprintf(color.Output, "Found period r = %s\n", at.Period)
	}
}

// ResultPrinter prints the factor pair, the product verification and the
// wall-clock duration of the run.
func ResultPrinter(res *shor.Result, elapsed time.Duration) {
	product := new(big.Int).Mul(res.P, res.Q)
	fmt.Fprintf(color.Output, "\nFactors found: %s and %s\n",
		color.New(color.FgGreen, color.Bold).Sprintf("%s", res.P),
		color.New(color.FgGreen, color.Bold).Sprintf("%s", res.Q),
	)
	fmt.Fprintf(color.Output, "Verification: %s * %s = %s\n", res.P, res.Q, product)
	fmt.Fprintf(color.Output, "Computation took: %s\n",
		color.New(color.FgHiBlack).Sprintf("%v", elapsed))
}

// FailurePrinter reports a run that ended without a factor pair.
func FailurePrinter(n *big.Int, err error, attempts int) {
	fmt.Fprintf(color.Output, "\n%s\n",
		color.New(color.FgRed, color.Bold).Sprintf(
			"Failed to factor %s after %d attempt(s): %v", n, attempts, err))
}
