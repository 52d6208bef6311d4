package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Policy decides what happens to a line that does not parse.
type Policy string

const (
	// PolicySkip drops malformed lines and tokens. They only show up in the
	// file metrics.
	PolicySkip Policy = "skip"
	// PolicyStrict fails the puzzle on the first malformed line.
	PolicyStrict Policy = "strict"
)

func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown invalid line policy %q", raw)
}

type Config struct {
	JobName string

	DistanceFile string
	ReportsFile  string
	LogsDir      string

	PolicyRaw string
	Policy    Policy

	FTP FTPConfig
}

type FTPConfig struct {
	Host                string
	Port                int
	Username            string
	Password            string
	RemoteDir           string
	DistanceFile        string
	ReportsFile         string
	ArchiveDir          string
	DeleteAfterDownload bool
	MoveAfterDownload   bool
}

// Enabled reports whether inputs should be fetched from FTP before running.
func (c FTPConfig) Enabled() bool {
	return c.Host != ""
}

func Load() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(os.Getenv("FTP_PORT"))
	if err != nil || port <= 0 {
		port = 21
	}
	deleteAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_DELETE"))
	moveAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_MOVE"))

	inputDir := getenv("INPUT_DIR", "input")

	cfg := &Config{
		JobName: getenv("JOB_NAME", "aoc-2024"),

		DistanceFile: getenv("DAY1_INPUT", filepath.Join(inputDir, "day1", "input")),
		ReportsFile:  getenv("DAY2_INPUT", filepath.Join(inputDir, "day2", "input")),
		LogsDir:      getenv("LOG_PATH", "logs"),

		PolicyRaw: os.Getenv("INVALID_LINE_POLICY"),

		FTP: FTPConfig{
			Host:                os.Getenv("FTP_HOST"),
			Port:                port,
			Username:            os.Getenv("FTP_USERNAME"),
			Password:            os.Getenv("FTP_PASSWORD"),
			RemoteDir:           os.Getenv("FTP_REMOTE_DIR"),
			DistanceFile:        getenv("FTP_DAY1_FILE", "day1.txt"),
			ReportsFile:         getenv("FTP_DAY2_FILE", "day2.txt"),
			ArchiveDir:          os.Getenv("FTP_ARCHIVE_DIR"),
			DeleteAfterDownload: deleteAfterDownload,
			MoveAfterDownload:   moveAfterDownload,
		},
	}

	// Validate reports a bad policy; until then fall back to skip.
	cfg.Policy, _ = ParsePolicy(cfg.PolicyRaw)
	if cfg.Policy == "" {
		cfg.Policy = PolicySkip
	}

	return cfg
}

func (c *Config) Validate() error {
	if _, err := ParsePolicy(c.PolicyRaw); err != nil {
		return fmt.Errorf("INVALID_LINE_POLICY: %w", err)
	}
	// Load always fills these; a Config built by hand may not.
	if c.DistanceFile == "" || c.ReportsFile == "" {
		return fmt.Errorf("DAY1_INPUT and DAY2_INPUT must not be empty")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
