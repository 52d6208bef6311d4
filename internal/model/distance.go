package model

// Pair is one valid line of the location list: a left and a right value.
type Pair struct {
	Left  int
	Right int
}

// Columns holds the left values in A and the right values in B, in input order
// until sorted.
type Columns struct {
	A []int
	B []int
}

func (c *Columns) Append(p Pair) {
	c.A = append(c.A, p.Left)
	c.B = append(c.B, p.Right)
}

func (c Columns) Len() int {
	return min(len(c.A), len(c.B))
}

type DistanceResult struct {
	TotalDistance int
	Similarity    int
}
