package service

import (
	"context"

	"noc-monitor/internal/dto"
	"noc-monitor/internal/entity"
	"noc-monitor/internal/repository/contract"
)

type ILogService interface {
	GetLogs(ctx context.Context, severity string) ([]*dto.LogResponse, error)
}

type logService struct {
	logRepository contract.LogRepository
}

func NewLogService(logRepository contract.LogRepository) ILogService {
	return &logService{logRepository: logRepository}
}

func (s *logService) GetLogs(ctx context.Context, severity string) ([]*dto.LogResponse, error) {
	level, err := entity.ParseSeverity(severity)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepository.GetLogs(ctx, level)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, &dto.LogResponse{
			Level:     string(l.Level),
			Message:   l.Message,
			CreatedAt: l.CreatedAt,
			Origin:    l.Origin,
		})
	}
	return res, nil
}
