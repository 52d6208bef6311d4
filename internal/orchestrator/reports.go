package orchestrator

import (
	"context"
	"fmt"

	"go-aoc-file/internal/metrics"
	"go-aoc-file/internal/model"
	"go-aoc-file/internal/puzzle"
	"go-aoc-file/internal/worker"
)

// RunReports solves day 2 for filePath and prints the number of safe reports
// to env.Out.
func RunReports(
	ctx context.Context,
	env Env,
	filePath string,
) (model.ReportResult, error) {
	var h worker.ReportHandler

	m, err := worker.ParseFile(ctx, worker.NewFileJob(filePath), &h, env.Policy, env.RunID)
	metrics.LogFileMetric(env.Log, m)
	if err != nil {
		return model.ReportResult{}, err
	}

	res := model.ReportResult{
		Safe:  puzzle.CountSafe(h.Reports),
		Total: len(h.Reports),
	}
	env.Log.Printf("DAY2 reports=%d safe=%d", res.Total, res.Safe)

	fmt.Fprintf(env.Out, "Safe reports: %d\n", res.Safe)

	return res, nil
}
