package implementation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"noc-monitor/internal/datasource/contract"
	"noc-monitor/internal/entity"
)

const (
	AllLogsFile    = "logs-low.log"
	MediumLogsFile = "logs-medium.log"
	HighLogsFile   = "logs-high.log"
)

// FileSystemDataSource keeps one append-only file with every entry plus one
// file per medium/high severity holding a copy of those entries.
type FileSystemDataSource struct {
	logPath        string
	allLogsPath    string
	mediumLogsPath string
	highLogsPath   string
	mu             sync.Mutex
}

var _ contract.LogDataSource = (*FileSystemDataSource)(nil)

func NewFileSystemDataSource(logPath string) (*FileSystemDataSource, error) {
	ds := &FileSystemDataSource{
		logPath:        logPath,
		allLogsPath:    filepath.Join(logPath, AllLogsFile),
		mediumLogsPath: filepath.Join(logPath, MediumLogsFile),
		highLogsPath:   filepath.Join(logPath, HighLogsFile),
	}
	if err := ds.EnsureStorage(); err != nil {
		return nil, err
	}
	return ds, nil
}

// EnsureStorage creates the log directory and the three files if missing.
// Existing contents are left untouched.
func (ds *FileSystemDataSource) EnsureStorage() error {
	if err := os.MkdirAll(ds.logPath, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	for _, path := range []string{ds.allLogsPath, ds.mediumLogsPath, ds.highLogsPath} {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("create log file %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the paths of the all, high and medium files, in that order.
func (ds *FileSystemDataSource) Files() []string {
	return []string{ds.allLogsPath, ds.highLogsPath, ds.mediumLogsPath}
}

func (ds *FileSystemDataSource) SaveLog(ctx context.Context, log *entity.LogEntry) error {
	if err := log.Validate(); err != nil {
		return err
	}

	logAsJSON, err := log.ToJSON()
	if err != nil {
		return fmt.Errorf("serialize log: %w", err)
	}
	line := logAsJSON + " \n"

	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := appendLine(ds.allLogsPath, line); err != nil {
		return err
	}

	switch log.Level {
	case entity.LogSeverityMedium:
		return appendLine(ds.mediumLogsPath, line)
	case entity.LogSeverityHigh:
		return appendLine(ds.highLogsPath, line)
	}
	return nil
}

func (ds *FileSystemDataSource) GetLogs(ctx context.Context, severity entity.LogSeverity) ([]*entity.LogEntry, error) {
	var path string
	switch severity {
	case entity.LogSeverityLow:
		path = ds.allLogsPath
	case entity.LogSeverityMedium:
		path = ds.mediumLogsPath
	case entity.LogSeverityHigh:
		path = ds.highLogsPath
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownSeverity, severity)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	return getLogsFromFile(path)
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return f.Close()
}

// getLogsFromFile skips whitespace-only lines; the write format always leaves
// a trailing empty line after the last record.
func getLogsFromFile(path string) ([]*entity.LogEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	logs := make([]*entity.LogEntry, 0)
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		log, err := entity.LogEntryFromJSON(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), i+1, err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}
