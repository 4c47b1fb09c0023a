package model

import (
	"time"

	"github.com/google/uuid"
)

type Image struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	StoragePath string    `gorm:"type:text;not null"`
	ImageType   string    `gorm:"type:varchar(50);not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Image) TableName() string {
	return "images"
}
