package specification

import (
	"fmt"

	"noc-monitor/internal/entity"

	"gorm.io/gorm"
)

// ByLevel filters rows with exactly this severity.
type ByLevel struct {
	Level entity.LogSeverity
}

func (s ByLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("level = ?", string(s.Level))
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// ForSeverity mirrors the file layout: low reads everything, medium and high
// read only their own level.
func ForSeverity(severity entity.LogSeverity) ([]Specification, error) {
	specs := []Specification{OrderBy{Field: "created_at"}}
	switch severity {
	case entity.LogSeverityLow:
		return specs, nil
	case entity.LogSeverityMedium, entity.LogSeverityHigh:
		return append(specs, ByLevel{Level: severity}), nil
	}
	return nil, fmt.Errorf("%w: %q", entity.ErrUnknownSeverity, severity)
}
