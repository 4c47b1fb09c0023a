package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/apperrors"
	"fashion-buddy-be/pkg/reasoning"
	"fashion-buddy-be/pkg/shopping"
)

type IColorAnalysisService interface {
	// AnalyzeFromURLs classifies already-stored face images and persists
	// the result against the session.
	AnalyzeFromURLs(ctx context.Context, sessionId uuid.UUID, imageURLs []string) (*dto.ColorAnalysisResponse, error)
	// AnalyzeUploaded stores operator-uploaded base64 face images first.
	AnalyzeUploaded(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeColorRequest) (*dto.ColorAnalysisResponse, error)
	LatestBySession(ctx context.Context, sessionId uuid.UUID) (*dto.ColorAnalysisResponse, error)
	// SearchProducts runs a budget-filtered product search and persists
	// the returned recommendations.
	SearchProducts(ctx context.Context, req *dto.SearchProductsRequest) ([]*dto.ProductResponse, error)
}

type colorAnalysisService struct {
	uowFactory   unitofwork.RepositoryFactory
	gateway      reasoning.Gateway
	imageService IImageService
	searcher     *shopping.Searcher
}

func NewColorAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	gateway reasoning.Gateway,
	imageService IImageService,
	searcher *shopping.Searcher,
) IColorAnalysisService {
	return &colorAnalysisService{
		uowFactory:   uowFactory,
		gateway:      gateway,
		imageService: imageService,
		searcher:     searcher,
	}
}

func (s *colorAnalysisService) AnalyzeFromURLs(ctx context.Context, sessionId uuid.UUID, imageURLs []string) (*dto.ColorAnalysisResponse, error) {
	analysis, err := s.gateway.ClassifySkinTone(ctx, imageURLs)
	if err != nil {
		return nil, err
	}

	record := entity.ColorAnalysis{
		Id:                uuid.New(),
		SessionId:         sessionId,
		SkinTone:          analysis.SkinTone,
		RecommendedColors: analysis.RecommendedColors,
		AvoidColors:       analysis.AvoidColors,
		CreatedAt:         time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ColorAnalysisRepository().Create(ctx, &record); err != nil {
		return nil, err
	}

	return &dto.ColorAnalysisResponse{
		Id:                record.Id,
		SessionId:         record.SessionId,
		SkinTone:          record.SkinTone,
		Undertone:         analysis.Undertone,
		RecommendedColors: record.RecommendedColors,
		AvoidColors:       record.AvoidColors,
		CreatedAt:         record.CreatedAt,
	}, nil
}

func (s *colorAnalysisService) AnalyzeUploaded(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeColorRequest) (*dto.ColorAnalysisResponse, error) {
	urls := make([]string, 0, len(req.ImagesBase64))
	for _, encoded := range req.ImagesBase64 {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, apperrors.Validation("image is not valid base64")
		}
		stored, err := s.imageService.StoreBytes(ctx, data, userId, req.SessionId, constant.ImageTypeFace)
		if err != nil {
			return nil, err
		}
		urls = append(urls, stored.URL)
	}

	return s.AnalyzeFromURLs(ctx, req.SessionId, urls)
}

func (s *colorAnalysisService) LatestBySession(ctx context.Context, sessionId uuid.UUID) (*dto.ColorAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.ColorAnalysisRepository().FindLatestBySession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("no color analysis for session")
	}

	return &dto.ColorAnalysisResponse{
		Id:                record.Id,
		SessionId:         record.SessionId,
		SkinTone:          record.SkinTone,
		RecommendedColors: record.RecommendedColors,
		AvoidColors:       record.AvoidColors,
		CreatedAt:         record.CreatedAt,
	}, nil
}

func (s *colorAnalysisService) SearchProducts(ctx context.Context, req *dto.SearchProductsRequest) ([]*dto.ProductResponse, error) {
	products, err := s.searcher.Search(ctx, shopping.Query{
		Color:    req.Color,
		ItemType: req.ItemType,
		Material: req.Material,
		Budget:   shopping.ParseBudget(req.Budget),
	})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	responses := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		rec := entity.ShoppingRecommendation{
			Id:              uuid.New(),
			SessionId:       req.SessionId,
			ProductName:     p.Name,
			Brand:           p.Brand,
			Price:           p.Price.StringFixed(0),
			ProductURL:      p.URL,
			ProductImageURL: p.ImageURL,
			Color:           p.Color,
			CreatedAt:       time.Now(),
		}
		if err := uow.ShoppingRepository().Create(ctx, &rec); err != nil {
			return nil, err
		}
		responses = append(responses, &dto.ProductResponse{
			Id:              rec.Id,
			ProductName:     rec.ProductName,
			Brand:           rec.Brand,
			Price:           rec.Price,
			ProductURL:      rec.ProductURL,
			ProductImageURL: rec.ProductImageURL,
			Color:           rec.Color,
		})
	}

	return responses, nil
}
