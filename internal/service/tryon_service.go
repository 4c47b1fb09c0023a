package service

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/apperrors"
	"fashion-buddy-be/pkg/tryon"
)

type ITryOnService interface {
	TryOn(ctx context.Context, userId uuid.UUID, req *dto.TryOnRequest) (*dto.TryOnResponse, error)
	// TryOnStored runs a try-on from two already-stored image URLs and
	// keeps the generated result as a session image.
	TryOnStored(ctx context.Context, userId, sessionId uuid.UUID, personURL, clothingURL string) (*dto.TryOnResponse, error)
}

type tryOnService struct {
	uowFactory   unitofwork.RepositoryFactory
	client       tryon.Client
	imageService IImageService
}

func NewTryOnService(
	uowFactory unitofwork.RepositoryFactory,
	client tryon.Client,
	imageService IImageService,
) ITryOnService {
	return &tryOnService{
		uowFactory:   uowFactory,
		client:       client,
		imageService: imageService,
	}
}

func (s *tryOnService) TryOn(ctx context.Context, userId uuid.UUID, req *dto.TryOnRequest) (*dto.TryOnResponse, error) {
	clothingURL, err := s.resolveClothingURL(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.BodyImageBase64 == "" {
		return nil, apperrors.Validation("body image is required")
	}
	data, err := base64.StdEncoding.DecodeString(req.BodyImageBase64)
	if err != nil {
		return nil, apperrors.Validation("body image is not valid base64")
	}

	stored, err := s.imageService.StoreBytes(ctx, data, userId, req.SessionId, constant.ImageTypeBody)
	if err != nil {
		return nil, err
	}

	return s.TryOnStored(ctx, userId, req.SessionId, stored.URL, clothingURL)
}

func (s *tryOnService) TryOnStored(ctx context.Context, userId, sessionId uuid.UUID, personURL, clothingURL string) (*dto.TryOnResponse, error) {
	resultURL, err := s.client.TryOn(ctx, personURL, clothingURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeReasoning, "virtual try-on failed", err)
	}

	stored, err := s.imageService.StoreFromURL(ctx, resultURL, userId, sessionId, constant.ImageTypeResult)
	if err != nil {
		return nil, err
	}

	return &dto.TryOnResponse{
		SessionId: sessionId,
		ResultURL: stored.URL,
	}, nil
}

func (s *tryOnService) resolveClothingURL(ctx context.Context, req *dto.TryOnRequest) (string, error) {
	if req.ClothingURL != "" {
		return req.ClothingURL, nil
	}
	if req.ProductId == uuid.Nil {
		return "", apperrors.Validation("either clothing_url or product_id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ShoppingRepository().FindById(ctx, req.ProductId)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", apperrors.NotFound("product not found")
	}
	if product.ProductImageURL == "" {
		return "", apperrors.Validation("product has no image to try on")
	}
	return product.ProductImageURL, nil
}
