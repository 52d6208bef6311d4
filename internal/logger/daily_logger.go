package logger

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger is what the pipelines need from a logger. *log.Logger satisfies it.
type Logger interface {
	Printf(string, ...any)
}

// DailyLogger writes to <dir>/<name>-YYYY-MM-DD.log and switches files when the
// date changes.
type DailyLogger struct {
	dir    string
	name   string
	now    func() time.Time
	mu     sync.Mutex
	date   string
	file   *os.File
	logger *log.Logger
}

func NewDailyLogger(dir, name string) (*DailyLogger, error) {
	l := &DailyLogger{
		dir:  dir,
		name: name,
		now:  time.Now,
	}
	if err := l.rotateIfNeeded(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *DailyLogger) rotateIfNeeded() error {
	today := l.now().Format("2006-01-02")

	if l.file != nil && l.date == today {
		return nil
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(
		l.dir,
		l.name+"-"+today+".log",
	)

	f, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		return err
	}

	if l.file != nil {
		_ = l.file.Close()
	}

	l.file = f
	l.date = today
	l.logger = log.New(
		f,
		"",
		log.Ldate|log.Ltime|log.Lmicroseconds,
	)

	return nil
}

// Printf is a no-op once the logger is closed.
func (l *DailyLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	_ = l.rotateIfNeeded()
	l.logger.Printf(format, v...)
}

func (l *DailyLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
