package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionType string    `gorm:"type:varchar(50);not null;default:'new'"`
	Status      string    `gorm:"type:varchar(50);not null;default:'active';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
