package contract

import (
	"context"
	"time"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	// FindExpired returns every image reference whose expiry is before now.
	FindExpired(ctx context.Context, now time.Time) ([]*entity.Image, error)
	FindBySessionAndType(ctx context.Context, sessionId uuid.UUID, imageType string) ([]*entity.Image, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Image, error)
	DeleteAllByIds(ctx context.Context, ids []uuid.UUID) error
}

type ColorAnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.ColorAnalysis) error
	// FindLatestBySession returns the most recent analysis for the session,
	// or nil when the session has none.
	FindLatestBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ColorAnalysis, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ColorAnalysis, error)
}

type ShoppingRepository interface {
	Create(ctx context.Context, rec *entity.ShoppingRecommendation) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ShoppingRecommendation, error)
	FindAllBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.ShoppingRecommendation, error)
}
