package metrics

import "time"

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

type FileMetric struct {
	RunID      string
	FileName   string
	Bytes      int64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalLines int64
	ParsedRows int64
	// ErrorCount is the number of lines that were dropped or lost tokens.
	ErrorCount  int64
	Undecodable int64
	Overlong    int64
	// ReadError is set when a read error ended the file early and the
	// lines before it were still used.
	ReadError string
	Status    string
}
