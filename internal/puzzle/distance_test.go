package puzzle

import (
	"slices"
	"testing"

	"github.com/kr/pretty"

	"go-aoc-file/internal/model"
)

func exampleColumns() model.Columns {
	var c model.Columns
	for _, p := range []model.Pair{
		{Left: 3, Right: 4}, {Left: 4, Right: 3}, {Left: 2, Right: 5}, {Left: 1, Right: 3}, {Left: 3, Right: 9}, {Left: 3, Right: 3},
	} {
		c.Append(p)
	}
	return c
}

func TestDistanceExample(t *testing.T) {
	got := Distance(exampleColumns())
	want := model.DistanceResult{TotalDistance: 11, Similarity: 31}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Fatalf("Distance mismatch:\n%s", diff)
	}
}

func TestDistanceLeavesInputUnsorted(t *testing.T) {
	cols := exampleColumns()
	Distance(cols)
	if diff := pretty.Diff(cols, exampleColumns()); len(diff) > 0 {
		t.Fatalf("input columns were modified:\n%s", diff)
	}
}

func TestSortColumnsIdempotent(t *testing.T) {
	once := exampleColumns()
	SortColumns(&once)

	twice := exampleColumns()
	SortColumns(&twice)
	SortColumns(&twice)

	if diff := pretty.Diff(once, twice); len(diff) > 0 {
		t.Fatalf("sorting twice differs from sorting once:\n%s", diff)
	}
	want := model.Columns{A: []int{1, 2, 3, 3, 3, 4}, B: []int{3, 3, 3, 4, 5, 9}}
	if diff := pretty.Diff(once, want); len(diff) > 0 {
		t.Fatalf("sorted columns:\n%s", diff)
	}
}

func TestTotalDistanceOrderInvariant(t *testing.T) {
	base := exampleColumns()
	want := Distance(base).TotalDistance

	a := slices.Clone(base.A)
	b := slices.Clone(base.B)
	slices.Reverse(a)
	// Rotate b so rows no longer line up with their original partner.
	b = append(b[2:], b[:2]...)

	got := Distance(model.Columns{A: a, B: b}).TotalDistance
	if got != want {
		t.Fatalf("TotalDistance after reordering = %d, want %d", got, want)
	}
}

func TestTotalDistanceTruncatesToShorter(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"empty", nil, nil, 0},
		{"longer a", []int{1, 2, 100}, []int{2, 2}, 1},
		{"longer b", []int{5}, []int{1, 50, 60}, 4},
		{"negative", []int{-3, 2}, []int{1, -2}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalDistance(tt.a, tt.b); got != tt.want {
				t.Fatalf("TotalDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityDisjointIsZero(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5, 6, 4}
	if got := Similarity(a, Frequencies(b)); got != 0 {
		t.Fatalf("Similarity = %d, want 0", got)
	}
}

func TestFrequencies(t *testing.T) {
	got := Frequencies([]int{4, 3, 5, 3, 9, 3})
	want := map[int]int{3: 3, 4: 1, 5: 1, 9: 1}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Fatalf("Frequencies:\n%s", diff)
	}
}
