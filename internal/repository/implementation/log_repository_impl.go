package implementation

import (
	"context"

	datasource "noc-monitor/internal/datasource/contract"
	"noc-monitor/internal/entity"
	"noc-monitor/internal/repository/contract"
)

type LogRepositoryImpl struct {
	dataSource datasource.LogDataSource
}

func NewLogRepository(dataSource datasource.LogDataSource) contract.LogRepository {
	return &LogRepositoryImpl{dataSource: dataSource}
}

func (r *LogRepositoryImpl) SaveLog(ctx context.Context, log *entity.LogEntry) error {
	return r.dataSource.SaveLog(ctx, log)
}

func (r *LogRepositoryImpl) GetLogs(ctx context.Context, severity entity.LogSeverity) ([]*entity.LogEntry, error) {
	return r.dataSource.GetLogs(ctx, severity)
}
