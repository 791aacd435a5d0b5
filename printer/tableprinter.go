package printer

import (
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/qfactor/QFactor-core/shor"
)

// AttemptTablePrinter renders the per-base attempt log as a table, one row
// per tried base.
func AttemptTablePrinter(res *shor.Result) {
	tbl := New()
	for i, at := range res.Attempts {
		period := "*"
		if at.Period != nil {
			period = at.Period.String()
		}
		tbl.AddRow(i+1, at.Base.String(), period, string(at.Outcome))
	}
	tbl.Print()
}

func New() table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("No.", "Base", "Period", "Outcome")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}
