package contract

import (
	"context"

	"noc-monitor/internal/entity"
)

type LogRepository interface {
	SaveLog(ctx context.Context, log *entity.LogEntry) error
	GetLogs(ctx context.Context, severity entity.LogSeverity) ([]*entity.LogEntry, error)
}
