package cuetrack

import (
	"github.com/arthurkushman/go-hungarian"
	"gonum.org/v1/gonum/mat"
)

// DefaultSimilarityThreshold is the midpoint of the similarity table: pairs
// scoring below it are never linked across frames.
const DefaultSimilarityThreshold = 0.5

// tieBias strictly orders matchings that tie on raw weight. Weighting each
// viable cell by (rows-i)*(cols-j) makes pairing low previous indices with
// low current indices the unique optimum among ties, while staying far below
// any meaningful score difference.
const tieBias = 1e-9

// Assignment is a partial bijection between previous-frame and current-frame
// detection indices: no index appears in more than one match.
type Assignment struct {
	// Matches holds {previousIndex, currentIndex} pairs, ordered by previous index.
	Matches [][2]int
	// UnmatchedPrev are previous indices whose tracks receive no continuation this step.
	UnmatchedPrev []int
	// UnmatchedCurr are current indices that birth new tracks.
	UnmatchedCurr []int
}

// ResolveAssignment solves a maximum-weight bipartite matching over the score
// matrix entries that reach tau. Entries below tau are treated as forbidden:
// they neither contribute weight nor survive as matches. A nil or empty
// matrix leaves everything unmatched.
//
// Candidates compete on the matching's total weight; matchings that tie on
// total weight resolve toward the lowest previous index, then the lowest
// current index, so the same scores always produce the same assignment.
func ResolveAssignment(scores *mat.Dense, tau float64) Assignment {
	var rows, cols int
	if scores != nil {
		rows, cols = scores.Dims()
	}
	if rows == 0 || cols == 0 {
		return Assignment{
			UnmatchedPrev: indexRange(rows),
			UnmatchedCurr: indexRange(cols),
		}
	}

	// The Hungarian solver wants a square matrix. Pad with zeros; entries
	// below tau are zeroed too so they cannot drive the optimum.
	n := maxInt(rows, cols)
	padded := make([][]float64, n)
	for i := range padded {
		padded[i] = make([]float64, n)
		if i >= rows {
			continue
		}
		for j := 0; j < cols; j++ {
			if s := scores.At(i, j); s >= tau {
				padded[i][j] = s + tieBias*float64((rows-i)*(cols-j))
			}
		}
	}
	solved := hungarian.SolveMax(padded)

	assignment := Assignment{}
	matchedCurr := make(map[int]struct{})
	// Walk previous indices in order so the result is deterministic.
	for i := 0; i < rows; i++ {
		j := -1
		for col := range solved[i] {
			j = col
			break
		}
		if j >= 0 && j < cols && scores.At(i, j) >= tau {
			assignment.Matches = append(assignment.Matches, [2]int{i, j})
			matchedCurr[j] = struct{}{}
		} else {
			assignment.UnmatchedPrev = append(assignment.UnmatchedPrev, i)
		}
	}
	for j := 0; j < cols; j++ {
		if _, ok := matchedCurr[j]; !ok {
			assignment.UnmatchedCurr = append(assignment.UnmatchedCurr, j)
		}
	}
	return assignment
}
