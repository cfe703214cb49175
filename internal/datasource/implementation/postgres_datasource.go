package implementation

import (
	"context"
	"fmt"

	"noc-monitor/internal/datasource/contract"
	"noc-monitor/internal/entity"
	"noc-monitor/internal/mapper"
	"noc-monitor/internal/model"
	"noc-monitor/internal/repository/specification"

	"gorm.io/gorm"
)

type PostgresDataSource struct {
	db     *gorm.DB
	mapper *mapper.LogMapper
}

var _ contract.LogDataSource = (*PostgresDataSource)(nil)

// NewPostgresDataSource migrates the log table before returning.
func NewPostgresDataSource(db *gorm.DB) (*PostgresDataSource, error) {
	if err := db.AutoMigrate(&model.LogModel{}); err != nil {
		return nil, fmt.Errorf("migrate log table: %w", err)
	}
	return newPostgresDataSource(db), nil
}

func newPostgresDataSource(db *gorm.DB) *PostgresDataSource {
	return &PostgresDataSource{
		db:     db,
		mapper: mapper.NewLogMapper(),
	}
}

func (ds *PostgresDataSource) SaveLog(ctx context.Context, log *entity.LogEntry) error {
	if err := log.Validate(); err != nil {
		return err
	}
	return ds.db.WithContext(ctx).Create(ds.mapper.ToModel(log)).Error
}

func (ds *PostgresDataSource) GetLogs(ctx context.Context, severity entity.LogSeverity) ([]*entity.LogEntry, error) {
	specs, err := specification.ForSeverity(severity)
	if err != nil {
		return nil, err
	}

	var rows []*model.LogModel
	if err := specification.Apply(ds.db.WithContext(ctx), specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return ds.mapper.ToEntities(rows), nil
}
