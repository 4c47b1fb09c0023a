package model

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingRecommendation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName     string    `gorm:"type:text"`
	Brand           string    `gorm:"type:varchar(100)"`
	Price           string    `gorm:"type:varchar(50)"`
	ProductURL      string    `gorm:"type:text;not null"`
	ProductImageURL string    `gorm:"type:text"`
	Color           string    `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (ShoppingRecommendation) TableName() string {
	return "shopping_recommendations"
}
