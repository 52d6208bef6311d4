package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-aoc-file/internal/config"
	"go-aoc-file/internal/ftp"
	"go-aoc-file/internal/logger"
	"go-aoc-file/internal/orchestrator"
)

var errUnknownPuzzle = errors.New("unknown puzzle")

func main() {
	puzzle := flag.String("puzzle", "", "Puzzle filter ex: DAY1 (default: all)")
	flag.Parse()

	start := time.Now()
	ctx := context.Background()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	var runLog logger.Logger
	dailyLog, err := logger.NewDailyLogger(cfg.LogsDir, cfg.JobName)
	if err != nil {
		log.Printf("Failed to open log dir %s, logging disabled: %v", cfg.LogsDir, err)
		runLog = log.New(io.Discard, "", 0)
	} else {
		defer dailyLog.Close()
		runLog = dailyLog
	}

	if cfg.FTP.Enabled() {
		if err := fetchInputs(cfg, runLog); err != nil {
			log.Fatalf("FTP download failed: %v", err)
		}
	}

	err = run(ctx, cfg, strings.TrimSpace(*puzzle), os.Stdout, os.Stderr, runLog)
	if errors.Is(err, errUnknownPuzzle) {
		log.Fatal(err)
	}

	runLog.Printf("ALL PUZZLES COMPLETED IN %s", time.Since(start))
}

func fetchInputs(cfg *config.Config, l logger.Logger) error {
	client, err := ftp.NewClient(cfg.FTP, l)
	if err != nil {
		return err
	}
	defer client.Close()

	l.Printf("Starting FTP download from %s", cfg.FTP.Host)
	return client.FetchInputs(ftp.Targets(cfg))
}

type puzzleEntry struct {
	ID   string
	Name string
	Fn   func(context.Context) error
}

// run prints the banner and the answers of the selected puzzles to stdout.
// Failed puzzles are reported on stderr and do not stop the others.
func run(
	ctx context.Context,
	cfg *config.Config,
	puzzleID string,
	stdout, stderr io.Writer,
	l logger.Logger,
) error {
	runID := uuid.New().String()

	env := orchestrator.Env{
		Out:    stdout,
		Log:    l,
		Policy: cfg.Policy,
		RunID:  runID,
	}

	// =========================================================
	// PUZZLE REGISTRY
	// =========================================================
	puzzles := []puzzleEntry{
		{
			ID:   "DAY1",
			Name: "SOLVE DAY1 DISTANCE",
			Fn: func(ctx context.Context) error {
				_, err := orchestrator.RunDistance(ctx, env, cfg.DistanceFile)
				return err
			},
		},
		{
			ID:   "DAY2",
			Name: "SOLVE DAY2 REPORTS",
			Fn: func(ctx context.Context) error {
				_, err := orchestrator.RunReports(ctx, env, cfg.ReportsFile)
				return err
			},
		},
	}

	chain := orchestrator.New(l)
	chain.OnError = func(_ string, err error) {
		fmt.Fprintf(stderr, "Error encountered in file %v\n", err)
	}

	for _, p := range puzzles {
		if puzzleID == "" || strings.EqualFold(puzzleID, p.ID) {
			chain.Add(p.Name, p.Fn)
		}
	}
	if len(chain.Steps) == 0 {
		return fmt.Errorf("%w: %s", errUnknownPuzzle, puzzleID)
	}

	l.Printf("Process ID %s", runID)
	fmt.Fprintln(stdout, "Advent of Code 2024!")

	return chain.Run(ctx)
}
