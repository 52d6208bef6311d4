// Package puzzle holds the day 1 and day 2 computations. Nothing here does I/O.
package puzzle

import (
	"slices"

	"go-aoc-file/internal/model"
)

// SortColumns sorts both columns ascending, independently of each other.
func SortColumns(c *model.Columns) {
	slices.Sort(c.A)
	slices.Sort(c.B)
}

// TotalDistance sums |a[i]-b[i]| for every rank present in both slices.
// Extra values in the longer slice are ignored.
func TotalDistance(a, b []int) int {
	n := min(len(a), len(b))
	total := 0
	for i := range n {
		total += abs(a[i] - b[i])
	}
	return total
}

func Frequencies(values []int) map[int]int {
	freq := make(map[int]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	return freq
}

// Similarity sums v * freq[v] over a. Values missing from freq count as zero.
func Similarity(a []int, freq map[int]int) int {
	score := 0
	for _, v := range a {
		score += v * freq[v]
	}
	return score
}

// Distance sorts a copy of cols and computes both day 1 scores.
func Distance(cols model.Columns) model.DistanceResult {
	sorted := model.Columns{
		A: slices.Clone(cols.A),
		B: slices.Clone(cols.B),
	}
	SortColumns(&sorted)

	return model.DistanceResult{
		TotalDistance: TotalDistance(sorted.A, sorted.B),
		Similarity:    Similarity(sorted.A, Frequencies(sorted.B)),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
