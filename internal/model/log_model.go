package model

import (
	"time"

	"github.com/google/uuid"
)

type LogModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Level     string    `gorm:"type:varchar(10);not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Origin    string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (LogModel) TableName() string {
	return "noc_logs"
}
