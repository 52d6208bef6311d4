package worker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go-aoc-file/internal/config"
	"go-aoc-file/internal/metrics"
)

var (
	// ErrInvalidLine marks a line that did not parse, fully or partly.
	ErrInvalidLine = errors.New("invalid line")
	// ErrIgnoredLine tells ParseFile the line carried nothing to record.
	ErrIgnoredLine = errors.New("ignored line")
)

type FileJob struct {
	FilePath string
	FileName string
}

func NewFileJob(path string) FileJob {
	return FileJob{
		FilePath: path,
		FileName: filepath.Base(path),
	}
}

// ParseError is returned under the strict policy for the first bad line.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (line %q)", e.File, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineHandler receives the whitespace separated fields of each line.
type LineHandler interface {
	Handle(fields []string) error
}

// ParseFile feeds every line of job to handler. Open errors are returned
// unchanged. Under PolicySkip nothing after a successful open fails the
// parse: rejected and overlong lines are counted and dropped, and a read
// error ends the input early and is recorded in the metric. Under
// PolicyStrict the first rejected line ends the parse with a *ParseError,
// and overlong lines and read errors are returned.
func ParseFile(
	ctx context.Context,
	job FileJob,
	handler LineHandler,
	policy config.Policy,
	runID string,
) (metrics.FileMetric, error) {
	start := time.Now()

	m := metrics.FileMetric{
		RunID:     runID,
		FileName:  job.FileName,
		StartTime: start,
		Status:    metrics.StatusFailed,
	}
	finish := func() {
		m.EndTime = time.Now()
		m.Duration = m.EndTime.Sub(start)
	}

	reader, err := OpenLines(job.FilePath)
	if err != nil {
		finish()
		return m, err
	}
	defer reader.Close()
	reader.StopOnLongLine = policy == config.PolicyStrict

	m.Bytes = reader.Size()

	var parseErr error
	for lineNo, line := range reader.Lines() {
		if err := ctx.Err(); err != nil {
			parseErr = err
			break
		}

		err := handler.Handle(strings.Fields(line))
		switch {
		case err == nil:
			m.ParsedRows++
		case errors.Is(err, ErrIgnoredLine):
		default:
			m.ErrorCount++
			if policy == config.PolicyStrict {
				parseErr = &ParseError{
					File: job.FilePath,
					Line: lineNo,
					Text: line,
					Err:  err,
				}
			}
		}
		if parseErr != nil {
			break
		}
	}

	m.TotalLines = reader.TotalLines()
	m.Undecodable = reader.Undecodable()
	m.Overlong = reader.Overlong()
	finish()

	if parseErr != nil {
		return m, parseErr
	}
	if err := reader.Err(); err != nil {
		err = fmt.Errorf("read %s: %w", job.FilePath, err)
		if policy == config.PolicyStrict {
			return m, err
		}
		m.ReadError = err.Error()
	}

	m.Status = metrics.StatusSuccess
	return m, nil
}
