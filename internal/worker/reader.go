package worker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"
)

const initialLineBuffer = 64 * 1024

// maxLineLength is the longest line kept, in bytes. Longer lines are skipped
// whole.
var maxLineLength = 20 * 1024 * 1024

// ErrLineTooLong is reported by Err when StopOnLongLine is set and a line is
// longer than maxLineLength.
var ErrLineTooLong = errors.New("line too long")

// LineReader yields the lines of one file exactly once.
type LineReader struct {
	// StopOnLongLine ends the iteration at the first overlong line instead
	// of skipping it.
	StopOnLongLine bool

	file   *os.File
	reader *bufio.Reader
	buf    []byte

	size        int64
	used        bool
	total       int64
	undecodable int64
	overlong    int64
	err         error
}

// OpenLines opens path for line-by-line reading. The error from os.Open is
// returned as is.
func OpenLines(path string) (*LineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	return &LineReader{
		file:   file,
		reader: bufio.NewReaderSize(file, initialLineBuffer),
		size:   size,
	}, nil
}

// Lines yields (line number, text) pairs. Line numbers count every physical
// line, including the skipped ones: lines that are not valid UTF-8 and lines
// over maxLineLength. The file is closed once iteration ends. Later calls
// yield nothing.
func (r *LineReader) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if r.used {
			return
		}
		r.used = true
		defer r.Close()

		lineNo := 0
		for {
			line, tooLong, err := r.readLine()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					r.err = err
				}
				return
			}
			lineNo++
			r.total++

			if tooLong {
				if r.StopOnLongLine {
					r.err = fmt.Errorf("line %d: %w", lineNo, ErrLineTooLong)
					return
				}
				r.overlong++
				continue
			}
			if !utf8.ValidString(line) {
				r.undecodable++
				continue
			}

			if !yield(lineNo, strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// readLine joins the fragments bufio.Reader hands out for one line. Past
// maxLineLength the rest of the line is read and dropped.
func (r *LineReader) readLine() (string, bool, error) {
	r.buf = r.buf[:0]
	tooLong := false
	for {
		frag, isPrefix, err := r.reader.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(r.buf)+len(frag) > maxLineLength {
				tooLong = true
				r.buf = r.buf[:0]
			} else {
				r.buf = append(r.buf, frag...)
			}
		}
		if !isPrefix {
			return string(r.buf), tooLong, nil
		}
	}
}

// Err returns the read error that ended the iteration, if any.
func (r *LineReader) Err() error {
	return r.err
}

// TotalLines is the number of physical lines read so far.
func (r *LineReader) TotalLines() int64 {
	return r.total
}

func (r *LineReader) Undecodable() int64 {
	return r.undecodable
}

func (r *LineReader) Overlong() int64 {
	return r.overlong
}

// Size is the file size in bytes at open time, or 0 if it was unknown.
func (r *LineReader) Size() int64 {
	return r.size
}

func (r *LineReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
