package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnalyzeColorRequest struct {
	UserId       uuid.UUID `json:"user_id" validate:"required"`
	SessionId    uuid.UUID `json:"session_id" validate:"required"`
	ImagesBase64 []string  `json:"images_base64" validate:"required,min=1"`
}

type ColorAnalysisResponse struct {
	Id                uuid.UUID `json:"id"`
	SessionId         uuid.UUID `json:"session_id"`
	SkinTone          string    `json:"skin_tone"`
	Undertone         string    `json:"undertone,omitempty"`
	RecommendedColors []string  `json:"recommended_colors"`
	AvoidColors       []string  `json:"avoid_colors"`
	CreatedAt         time.Time `json:"created_at"`
}

type SearchProductsRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Color     string    `json:"color" validate:"required"`
	ItemType  string    `json:"item_type" validate:"required"`
	Material  string    `json:"material"`
	Budget    string    `json:"budget"`
}

type ProductResponse struct {
	Id              uuid.UUID `json:"id"`
	ProductName     string    `json:"product_name"`
	Brand           string    `json:"brand"`
	Price           string    `json:"price"`
	ProductURL      string    `json:"product_url"`
	ProductImageURL string    `json:"product_image_url,omitempty"`
	Color           string    `json:"color"`
}

type TryOnRequest struct {
	UserId          uuid.UUID `json:"user_id" validate:"required"`
	SessionId       uuid.UUID `json:"session_id" validate:"required"`
	BodyImageBase64 string    `json:"body_image_base64"`
	ClothingURL     string    `json:"clothing_url"`
	ProductId       uuid.UUID `json:"product_id"`
}

type TryOnResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	ResultURL string    `json:"result_url"`
}
