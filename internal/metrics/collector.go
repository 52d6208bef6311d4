package metrics

import (
	"github.com/dustin/go-humanize"

	"go-aoc-file/internal/logger"
)

func LogFileMetric(l logger.Logger, m FileMetric) {
	l.Printf("======================================")
	l.Printf("FILE METRICS")
	l.Printf("Run         : %s", m.RunID)
	l.Printf("File        : %s", m.FileName)
	l.Printf("Size        : %s", humanize.Bytes(uint64(m.Bytes)))
	l.Printf("Status      : %s", m.Status)
	l.Printf("Lines       : %s", humanize.Comma(m.TotalLines))
	l.Printf("Parsed Rows : %s", humanize.Comma(m.ParsedRows))
	l.Printf("Errors      : %s", humanize.Comma(m.ErrorCount))
	l.Printf("Undecodable : %s", humanize.Comma(m.Undecodable))
	l.Printf("Overlong    : %s", humanize.Comma(m.Overlong))
	if m.ReadError != "" {
		l.Printf("Read Error  : %s", m.ReadError)
	}
	l.Printf("Duration    : %s", m.Duration)
	l.Printf("======================================")
}
