package puzzle

import "go-aoc-file/internal/model"

// maxStep is exclusive: adjacent levels may differ by at most maxStep-1.
const maxStep = 4

// IsSafe reports whether r is strictly increasing or strictly decreasing with
// every step smaller than maxStep. Reports with fewer than two levels are safe.
func IsSafe(r model.Report) bool {
	return allPairs(r, increasing) || allPairs(r, decreasing)
}

func increasing(w0, w1 int) bool {
	return w0 < w1 && w0+maxStep > w1
}

func decreasing(w0, w1 int) bool {
	return w0 > w1 && w0-maxStep < w1
}

func allPairs(r model.Report, ok func(w0, w1 int) bool) bool {
	for i := 1; i < len(r); i++ {
		if !ok(r[i-1], r[i]) {
			return false
		}
	}
	return true
}

func CountSafe(reports []model.Report) int {
	n := 0
	for _, r := range reports {
		if IsSafe(r) {
			n++
		}
	}
	return n
}
