package contract

import (
	"context"

	"noc-monitor/internal/entity"
)

// LogDataSource is a persistence backend for log entries.
type LogDataSource interface {
	SaveLog(ctx context.Context, log *entity.LogEntry) error
	GetLogs(ctx context.Context, severity entity.LogSeverity) ([]*entity.LogEntry, error)
}
