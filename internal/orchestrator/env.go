package orchestrator

import (
	"io"

	"go-aoc-file/internal/config"
	"go-aoc-file/internal/logger"
)

// Env is what every puzzle run shares: where answers go, where logs go, and
// how bad lines are treated.
type Env struct {
	Out    io.Writer
	Log    logger.Logger
	Policy config.Policy
	RunID  string
}
