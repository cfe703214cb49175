package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedRecord = errors.New("malformed log record")
	ErrUnknownSeverity = errors.New("unknown severity level")
)

type LogSeverity string

const (
	LogSeverityLow    LogSeverity = "low"
	LogSeverityMedium LogSeverity = "medium"
	LogSeverityHigh   LogSeverity = "high"
)

func ParseSeverity(value string) (LogSeverity, error) {
	switch LogSeverity(value) {
	case LogSeverityLow, LogSeverityMedium, LogSeverityHigh:
		return LogSeverity(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, value)
}

// LogEntry is one monitoring event. It is never mutated once persisted.
type LogEntry struct {
	Level     LogSeverity `json:"level"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"createdAt"`
	Origin    string      `json:"origin"`
}

type LogEntryOptions struct {
	Level     LogSeverity
	Message   string
	Origin    string
	CreatedAt time.Time // zero means now
}

func NewLogEntry(opts LogEntryOptions) *LogEntry {
	createdAt := opts.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &LogEntry{
		Level:     opts.Level,
		Message:   opts.Message,
		CreatedAt: createdAt,
		Origin:    opts.Origin,
	}
}

// Validate reports whether the entry would decode back from its serialized form.
func (l *LogEntry) Validate() error {
	if _, err := ParseSeverity(string(l.Level)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if l.Message == "" || l.Origin == "" || l.CreatedAt.IsZero() {
		return fmt.Errorf("%w: level, message, createdAt and origin are required", ErrMalformedRecord)
	}
	return nil
}

func (l *LogEntry) ToJSON() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// rawLogEntry keeps createdAt as text so a missing field can be told apart from a zero time.
type rawLogEntry struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Origin    string `json:"origin"`
}

// LogEntryFromJSON decodes a single serialized record.
func LogEntryFromJSON(line string) (*LogEntry, error) {
	var raw rawLogEntry
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if raw.Level == "" || raw.Message == "" || raw.CreatedAt == "" || raw.Origin == "" {
		return nil, fmt.Errorf("%w: level, message, createdAt and origin are required", ErrMalformedRecord)
	}

	level, err := ParseSeverity(raw.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, raw.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid createdAt: %v", ErrMalformedRecord, err)
	}

	return &LogEntry{
		Level:     level,
		Message:   raw.Message,
		CreatedAt: createdAt,
		Origin:    raw.Origin,
	}, nil
}
