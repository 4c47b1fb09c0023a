package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is a stored user photo reference. The binary lives in object
// storage under StoragePath; the row only tracks ownership and expiry.
type Image struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SessionId   uuid.UUID
	StoragePath string
	ImageType   string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type ColorAnalysis struct {
	Id                uuid.UUID
	SessionId         uuid.UUID
	SkinTone          string
	RecommendedColors []string
	AvoidColors       []string
	CreatedAt         time.Time
}

type ShoppingRecommendation struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	ProductName     string
	Brand           string
	Price           string
	ProductURL      string
	ProductImageURL string
	Color           string
	CreatedAt       time.Time
}
