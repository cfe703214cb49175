package mapper

import (
	"noc-monitor/internal/entity"
	"noc-monitor/internal/model"

	"github.com/google/uuid"
)

type LogMapper struct{}

func NewLogMapper() *LogMapper {
	return &LogMapper{}
}

func (m *LogMapper) ToEntity(l *model.LogModel) *entity.LogEntry {
	if l == nil {
		return nil
	}
	return &entity.LogEntry{
		Level:     entity.LogSeverity(l.Level),
		Message:   l.Message,
		CreatedAt: l.CreatedAt,
		Origin:    l.Origin,
	}
}

func (m *LogMapper) ToEntities(logs []*model.LogModel) []*entity.LogEntry {
	out := make([]*entity.LogEntry, 0, len(logs))
	for _, l := range logs {
		out = append(out, m.ToEntity(l))
	}
	return out
}

// ToModel assigns a fresh row id; entries have no identity of their own.
func (m *LogMapper) ToModel(l *entity.LogEntry) *model.LogModel {
	if l == nil {
		return nil
	}
	return &model.LogModel{
		Id:        uuid.New(),
		Level:     string(l.Level),
		Message:   l.Message,
		Origin:    l.Origin,
		CreatedAt: l.CreatedAt,
	}
}
