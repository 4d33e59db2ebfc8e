package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	defaultLogFileName = "banger.log"
	logDirPerm         = 0o755
	logFilePerm        = 0o600
	backupTimeLayout   = "2006-01-02-15-04-05.000"
)

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Dir        string
	Name       string // defaults to banger.log
	MaxSizeMB  int    // rotate once the file would exceed this; 0 never rotates
	MaxBackups int    // rotated files kept; 0 keeps all
	MaxAgeDays int    // rotated files older than this are removed; 0 keeps all
	Compress   bool   // gzip rotated files
}

// RotatingFile is an io.Writer appending to a log file and rotating it by size.
// It is safe for concurrent use.
type RotatingFile struct {
	mu          sync.Mutex
	cfg         FileConfig
	maxSize     int64
	maxAge      time.Duration
	currentFile *os.File
	currentSize int64
}

// NewRotatingFile opens (or creates) the log file described by cfg.
func NewRotatingFile(cfg FileConfig) (*RotatingFile, error) {
	if cfg.Dir == "" {
		return nil, errors.New("log directory is required")
	}
	if cfg.Name == "" {
		cfg.Name = defaultLogFileName
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &RotatingFile{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxAge:  time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *RotatingFile) openCurrentFile() error {
	logPath := r.Path()

	r.currentSize = 0
	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

// Write appends p, rotating first when p would push the file past MaxSizeMB.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *RotatingFile) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := filepath.Join(r.cfg.Dir, fmt.Sprintf("%s.%s", r.cfg.Name, time.Now().Format(backupTimeLayout)))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(filePath string) (err error) {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(filePath+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err = io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// cleanup drops rotated files past MaxAgeDays, then the oldest beyond MaxBackups.
func (r *RotatingFile) cleanup() {
	files, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := time.Now()

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), r.cfg.Name+".") {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}

		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			if err := os.Remove(filepath.Join(r.cfg.Dir, file.Name())); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}

	// Oldest first; names embed the rotation time so they break ties.
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].ModTime().Equal(backups[j].ModTime()) {
			return backups[i].Name() < backups[j].Name()
		}
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.cfg.MaxBackups] {
		if err := os.Remove(filepath.Join(r.cfg.Dir, info.Name())); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
		}
	}
}

// Close closes the active log file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
