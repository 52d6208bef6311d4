// internal/ftp/client.go
package ftp

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"go-aoc-file/internal/config"
	"go-aoc-file/internal/logger"
	"go-aoc-file/internal/utils"

	"github.com/jlaffaye/ftp"
)

// Target maps a file in the remote directory to the local path the puzzle
// reads from.
type Target struct {
	Remote string
	Local  string
}

type Client struct {
	conn   *ftp.ServerConn
	config config.FTPConfig
	log    logger.Logger
}

func NewClient(cfg config.FTPConfig, l logger.Logger) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to FTP server: %w", err)
	}

	if err := conn.Login(cfg.Username, cfg.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("failed to login to FTP server: %w", err)
	}

	return &Client{
		conn:   conn,
		config: cfg,
		log:    l,
	}, nil
}

// Targets lists the two puzzle inputs for cfg.
func Targets(cfg *config.Config) []Target {
	return []Target{
		{Remote: cfg.FTP.DistanceFile, Local: cfg.DistanceFile},
		{Remote: cfg.FTP.ReportsFile, Local: cfg.ReportsFile},
	}
}

// FetchInputs downloads every target, then archives or deletes it on the
// server if configured to. A failed archive/delete is only logged.
func (c *Client) FetchInputs(targets []Target) error {
	if c.config.RemoteDir != "" {
		if err := c.conn.ChangeDir(c.config.RemoteDir); err != nil {
			return fmt.Errorf("failed to change directory: %w", err)
		}
	}

	for _, t := range targets {
		if err := utils.EnsureParentDir(t.Local); err != nil {
			return fmt.Errorf("failed to create local folder for %s: %w", t.Local, err)
		}

		if err := c.downloadFile(t.Remote, t.Local); err != nil {
			return fmt.Errorf("failed to download %s: %w", t.Remote, err)
		}
		c.log.Printf("FTP downloaded %s -> %s", t.Remote, t.Local)

		if c.config.MoveAfterDownload && c.config.ArchiveDir != "" {
			if err := c.MoveFileWithTimestamp(t.Remote, c.config.ArchiveDir); err != nil {
				c.log.Printf("Warning: Failed to move %s to archive: %v", t.Remote, err)
			}
		} else if c.config.DeleteAfterDownload {
			if err := c.DeleteFile(t.Remote); err != nil {
				c.log.Printf("Warning: Failed to delete %s: %v", t.Remote, err)
			}
		}
	}

	return nil
}

func (c *Client) downloadFile(remotePath, localPath string) error {
	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return err
	}
	defer resp.Close()

	localFile, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	_, err = io.Copy(localFile, resp)
	return err
}

// MoveFileWithTimestamp moves file with timestamp appended to filename
func (c *Client) MoveFileWithTimestamp(sourceFile, destDir string) error {
	sourceFile = path.Clean(sourceFile)
	destDir = path.Clean(destDir)

	if err := c.ensureDir(destDir); err != nil {
		return fmt.Errorf("failed to ensure destination directory: %w", err)
	}

	destPath := path.Join(destDir, archiveName(sourceFile, time.Now()))

	// RNFR/RNTO; both sides must be resolvable from the current dir.
	if err := c.conn.Rename(sourceFile, destPath); err != nil {
		return fmt.Errorf(
			"failed to move file from [%s] to [%s]: %w",
			sourceFile, destPath, err,
		)
	}

	return nil
}

// archiveName turns "dir/day1.txt" into "day1_20241201_150405.txt".
func archiveName(file string, t time.Time) string {
	filename := path.Base(file)
	ext := path.Ext(filename)
	nameWithoutExt := filename[:len(filename)-len(ext)]

	return fmt.Sprintf("%s_%s%s", nameWithoutExt, t.Format("20060102_150405"), ext)
}

// DeleteFile deletes a file from FTP server
func (c *Client) DeleteFile(remotePath string) error {
	if err := c.conn.Delete(remotePath); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", remotePath, err)
	}
	return nil
}

// ensureDir creates dir if needed and leaves the working directory unchanged.
func (c *Client) ensureDir(dir string) error {
	dir = path.Clean(dir)

	origDir, err := c.conn.CurrentDir()
	if err != nil {
		return err
	}

	if err := c.conn.ChangeDir(dir); err != nil {
		if err := c.conn.MakeDir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	_ = c.conn.ChangeDir(origDir)
	return nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Quit()
	}
	return nil
}
