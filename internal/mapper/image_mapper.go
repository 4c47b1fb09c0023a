package mapper

import (
	"encoding/json"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/model"

	"gorm.io/datatypes"
)

type ImageMapper struct{}

func NewImageMapper() *ImageMapper {
	return &ImageMapper{}
}

func (m *ImageMapper) ToEntity(i *model.Image) *entity.Image {
	if i == nil {
		return nil
	}
	return &entity.Image{
		Id:          i.Id,
		UserId:      i.UserId,
		SessionId:   i.SessionId,
		StoragePath: i.StoragePath,
		ImageType:   i.ImageType,
		ExpiresAt:   i.ExpiresAt,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *ImageMapper) ToModel(i *entity.Image) *model.Image {
	if i == nil {
		return nil
	}
	return &model.Image{
		Id:          i.Id,
		UserId:      i.UserId,
		SessionId:   i.SessionId,
		StoragePath: i.StoragePath,
		ImageType:   i.ImageType,
		ExpiresAt:   i.ExpiresAt,
		CreatedAt:   i.CreatedAt,
	}
}

type ColorAnalysisMapper struct{}

func NewColorAnalysisMapper() *ColorAnalysisMapper {
	return &ColorAnalysisMapper{}
}

func (m *ColorAnalysisMapper) ToEntity(c *model.ColorAnalysis) *entity.ColorAnalysis {
	if c == nil {
		return nil
	}
	return &entity.ColorAnalysis{
		Id:                c.Id,
		SessionId:         c.SessionId,
		SkinTone:          c.SkinTone,
		RecommendedColors: jsonToStrings(c.RecommendedColors),
		AvoidColors:       jsonToStrings(c.AvoidColors),
		CreatedAt:         c.CreatedAt,
	}
}

func (m *ColorAnalysisMapper) ToModel(c *entity.ColorAnalysis) *model.ColorAnalysis {
	if c == nil {
		return nil
	}
	return &model.ColorAnalysis{
		Id:                c.Id,
		SessionId:         c.SessionId,
		SkinTone:          c.SkinTone,
		RecommendedColors: stringsToJSON(c.RecommendedColors),
		AvoidColors:       stringsToJSON(c.AvoidColors),
		CreatedAt:         c.CreatedAt,
	}
}

func jsonToStrings(j datatypes.JSON) []string {
	if len(j) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(j, &out); err != nil {
		return nil
	}
	return out
}

func stringsToJSON(s []string) datatypes.JSON {
	if s == nil {
		s = []string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

type ShoppingMapper struct{}

func NewShoppingMapper() *ShoppingMapper {
	return &ShoppingMapper{}
}

func (m *ShoppingMapper) ToEntity(r *model.ShoppingRecommendation) *entity.ShoppingRecommendation {
	if r == nil {
		return nil
	}
	return &entity.ShoppingRecommendation{
		Id:              r.Id,
		SessionId:       r.SessionId,
		ProductName:     r.ProductName,
		Brand:           r.Brand,
		Price:           r.Price,
		ProductURL:      r.ProductURL,
		ProductImageURL: r.ProductImageURL,
		Color:           r.Color,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ShoppingMapper) ToModel(r *entity.ShoppingRecommendation) *model.ShoppingRecommendation {
	if r == nil {
		return nil
	}
	return &model.ShoppingRecommendation{
		Id:              r.Id,
		SessionId:       r.SessionId,
		ProductName:     r.ProductName,
		Brand:           r.Brand,
		Price:           r.Price,
		ProductURL:      r.ProductURL,
		ProductImageURL: r.ProductImageURL,
		Color:           r.Color,
		CreatedAt:       r.CreatedAt,
	}
}
