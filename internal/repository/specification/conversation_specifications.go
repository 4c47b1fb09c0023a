package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPhoneNumber struct {
	PhoneNumber string
}

func (s ByPhoneNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone_number = ?", s.PhoneNumber)
}

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

type ByImageType struct {
	ImageType string
}

func (s ByImageType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("image_type = ?", s.ImageType)
}

type ExpiredBefore struct {
	Time time.Time
}

func (s ExpiredBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at < ?", s.Time)
}
