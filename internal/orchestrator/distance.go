package orchestrator

import (
	"context"
	"fmt"

	"go-aoc-file/internal/metrics"
	"go-aoc-file/internal/model"
	"go-aoc-file/internal/puzzle"
	"go-aoc-file/internal/worker"
)

// RunDistance solves day 1 for filePath and prints the total distance and the
// similarity score to env.Out.
func RunDistance(
	ctx context.Context,
	env Env,
	filePath string,
) (model.DistanceResult, error) {
	var h worker.DistanceHandler

	m, err := worker.ParseFile(ctx, worker.NewFileJob(filePath), &h, env.Policy, env.RunID)
	metrics.LogFileMetric(env.Log, m)
	if err != nil {
		return model.DistanceResult{}, err
	}

	cols := h.Columns
	if len(cols.A) != len(cols.B) {
		env.Log.Printf("WARNING column length mismatch: %d vs %d, pairing first %d",
			len(cols.A), len(cols.B), cols.Len())
	}

	res := puzzle.Distance(cols)
	env.Log.Printf("DAY1 pairs=%d distance=%d similarity=%d", cols.Len(), res.TotalDistance, res.Similarity)

	fmt.Fprintf(env.Out, "Total distance: %d\n", res.TotalDistance)
	fmt.Fprintf(env.Out, "Similarity: %d\n", res.Similarity)

	return res, nil
}
