package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ColorAnalysis struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	SkinTone          string         `gorm:"type:varchar(100);not null"`
	RecommendedColors datatypes.JSON `gorm:"type:jsonb"`
	AvoidColors       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (ColorAnalysis) TableName() string {
	return "color_analyses"
}
