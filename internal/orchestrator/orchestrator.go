package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-aoc-file/internal/logger"
)

type PuzzleStep struct {
	Name string
	Run  func(ctx context.Context) error
}

// PuzzleChain runs its steps in order. A failing step does not stop the
// steps after it.
type PuzzleChain struct {
	Steps []PuzzleStep
	Log   logger.Logger
	// OnError, if set, is called for every failed step.
	OnError func(name string, err error)
}

func New(l logger.Logger) *PuzzleChain {
	return &PuzzleChain{Log: l}
}

func (c *PuzzleChain) Add(name string, fn func(ctx context.Context) error) {
	c.Steps = append(c.Steps, PuzzleStep{
		Name: name,
		Run:  fn,
	})
}

// Run returns the failed steps' errors joined, each prefixed with its step name.
func (c *PuzzleChain) Run(ctx context.Context) error {
	var errs []error
	for i, step := range c.Steps {
		c.logSection(step.Name)

		start := time.Now()
		if err := step.Run(ctx); err != nil {
			c.Log.Printf("Step %d (%s) failed after %s: %v", i+1, step.Name, time.Since(start), err)
			if c.OnError != nil {
				c.OnError(step.Name, err)
			}
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
			continue
		}

		c.Log.Printf("Step %d completed in %s", i+1, time.Since(start))
	}
	return errors.Join(errs...)
}

func (c *PuzzleChain) logSection(title string) {
	c.Log.Printf("=====================================================")
	c.Log.Printf("%s", title)
	c.Log.Printf("=====================================================")
}
