package printer

import (
	"github.com/schollz/progressbar/v3"
)

// PeriodProgress returns a tick callback for shor.Config.OnPeriodTick that
// drives a progress bar over the period scan. The counter restarting marks
// a new scan and gets a fresh bar; an unknown bound (0) falls back to a
// spinner.
func PeriodProgress() func(done, bound uint64) {
	var bar *progressbar.ProgressBar
	var lastDone uint64

	return func(done, bound uint64) {
		if bar == nil || done < lastDone {
			max := int64(-1)
			if bound > 0 {
				max = int64(bound)
			}
			bar = progressbar.NewOptions64(max,
				progressbar.OptionSetDescription("period scan"),
				progressbar.OptionClearOnFinish(),
			)
		}
		lastDone = done
		_ = bar.Set64(int64(done))
	}
}
