package worker

import (
	"fmt"

	"go-aoc-file/internal/model"
	"go-aoc-file/internal/utils"
)

// DistanceHandler collects the two location columns. A line must hold exactly
// two integers; anything else is rejected whole.
type DistanceHandler struct {
	Columns model.Columns
}

func (h *DistanceHandler) Handle(fields []string) error {
	if len(fields) == 0 {
		return ErrIgnoredLine
	}
	if len(fields) != 2 {
		return fmt.Errorf("%w: want 2 fields, got %d", ErrInvalidLine, len(fields))
	}

	left, err := utils.ParseInt(fields[0])
	if err != nil {
		return fmt.Errorf("%w: left value: %w", ErrInvalidLine, err)
	}
	right, err := utils.ParseInt(fields[1])
	if err != nil {
		return fmt.Errorf("%w: right value: %w", ErrInvalidLine, err)
	}

	h.Columns.Append(model.Pair{Left: left, Right: right})
	return nil
}

// ReportHandler collects one report per line. Tokens that are not integers
// are left out of the report; the report is still kept and the line is
// reported as invalid.
type ReportHandler struct {
	Reports []model.Report
}

func (h *ReportHandler) Handle(fields []string) error {
	report := make(model.Report, 0, len(fields))
	var dropped []string
	for _, f := range fields {
		n, err := utils.ParseInt(f)
		if err != nil {
			dropped = append(dropped, f)
			continue
		}
		report = append(report, n)
	}

	h.Reports = append(h.Reports, report)

	if len(dropped) > 0 {
		return fmt.Errorf("%w: dropped tokens %q", ErrInvalidLine, dropped)
	}
	return nil
}
