package model

// Report is the list of levels read from one line.
type Report []int

type ReportResult struct {
	Safe  int
	Total int
}
