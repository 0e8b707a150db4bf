package cuetrack

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ScoreMatrix computes the fused same-object probability for every
// (previous, current) detection pair. Row i column j holds the probability
// that curr[j] continues prev[i]. Returns nil when either side is empty.
//
// Rows are scored concurrently: each goroutine writes a disjoint set of
// matrix cells, so no synchronization beyond the final wait is needed.
func ScoreMatrix(prev, curr []*Detection, extent Extent) *mat.Dense {
	if len(prev) == 0 || len(curr) == 0 {
		return nil
	}
	scores := mat.NewDense(len(prev), len(curr), nil)
	var wg sync.WaitGroup
	for i := range prev {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := range curr {
				scores.Set(i, j, FuseCues(ScoreCues(curr[j], prev[i], extent)))
			}
		}(i)
	}
	wg.Wait()
	return scores
}
