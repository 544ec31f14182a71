package tidyclust

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// TidyAll tidies a slice of independent results, e.g. one per candidate k.
// Output index i is the cluster table for results[i]. numWorkers controls
// the degree of parallelism; if <= 1, the results are processed sequentially.
// On a shape error the whole call fails with the first failing result's
// error, annotated with its index.
func TidyAll(results []*KMeansResult, numWorkers int) ([]ClusterTable, error) {
	tables := make([]ClusterTable, len(results))
	err := forEachResult(len(results), numWorkers, func(i int) error {
		t, err := Tidy(results[i])
		if err != nil {
			return err
		}
		tables[i] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// AugmentAll augments the same observation set against each result, as when
// one dataset is clustered at several values of k. Output index i is the
// observation table for results[i].
func AugmentAll(results []*KMeansResult, observations [][]float64, numWorkers int) ([]ObservationTable, error) {
	tables := make([]ObservationTable, len(results))
	err := forEachResult(len(results), numWorkers, func(i int) error {
		t, err := Augment(results[i], observations)
		if err != nil {
			return err
		}
		tables[i] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// GlanceAll extracts the one-row summary of each result, in input order.
func GlanceAll(results []*KMeansResult) []Summary {
	summaries := make([]Summary, len(results))
	for i, r := range results {
		summaries[i] = Glance(r)
	}
	return summaries
}

// TotalWithinSSCurve returns each result's total within-cluster sum of
// squares, in input order. Plotting this against the candidate k values is
// the standard elbow heuristic for choosing k.
func TotalWithinSSCurve(results []*KMeansResult) []float64 {
	curve := make([]float64, len(results))
	for i, r := range results {
		curve[i] = r.TotalWithinSS
	}
	return curve
}

// SumTotalWithinSS sums TotalWithinSSCurve, a convenience for callers that
// track the aggregate dispersion across a sweep.
func SumTotalWithinSS(results []*KMeansResult) float64 {
	return floats.Sum(TotalWithinSSCurve(results))
}

// forEachResult runs fn(i) for i in [0, n) across numWorkers goroutines.
// Indices are split into contiguous ranges so workers never contend on
// adjacent output slots. Falls back to a plain loop if numWorkers <= 1.
// The first error in index order wins.
func forEachResult(n, numWorkers int, fn func(i int) error) error {
	if numWorkers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return fmt.Errorf("tidyclust: result %d: %w", i, err)
			}
		}
		return nil
	}

	errs := make([]error, n)

	var wg sync.WaitGroup
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				errs[i] = fn(i)
			}
		}(start, end)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("tidyclust: result %d: %w", i, err)
		}
	}
	return nil
}
