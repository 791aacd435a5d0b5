package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/qfactor/QFactor-core/printer"
	"github.com/qfactor/QFactor-core/shor"
)

type batchEntry struct {
	N       *big.Int
	Result  *shor.Result
	Err     error
	Elapsed time.Duration
}

// batchRun factors several independent moduli concurrently. Each attempt is
// self-contained (no shared state in the core), so a weighted semaphore is
// all the coordination needed. Per-attempt realtime printing stays off to
// keep the output from interleaving; results print in input order at the
// end. Returns true when any modulus failed to factor.
func batchRun(moduli []*big.Int, cfg shor.Config, workers int, jsonPrint bool) bool {
	if workers <= 0 {
		workers = 1
	}

	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	entries := make([]batchEntry, len(moduli))
	var wg sync.WaitGroup
	for i, n := range moduli {
		if err := sem.Acquire(ctx, 1); err != nil {
			entries[i] = batchEntry{N: n, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, n *big.Int) {
			defer wg.Done()
			defer sem.Release(1)
			start := time.Now()
			res, err := shor.Factor(n, cfg)
			entries[i] = batchEntry{N: n, Result: res, Err: err, Elapsed: time.Since(start)}
		}(i, n)
	}
	wg.Wait()

	failed := false
	if jsonPrint {
		results := make([]*shor.Result, 0, len(entries))
		for _, e := range entries {
			if e.Err != nil {
				failed = true
			}
			results = append(results, e.Result)
		}
		out, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(out))
		return failed
	}

	for _, e := range entries {
		if e.Err != nil {
			failed = true
			attempts := 0
			if e.Result != nil {
				attempts = len(e.Result.Attempts)
			}
			printer.FailurePrinter(e.N, e.Err, attempts)
			continue
		}
		printer.ResultPrinter(e.Result, e.Elapsed)
	}
	return failed
}
