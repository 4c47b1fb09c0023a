package implementation

import (
	"context"
	"errors"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/mapper"
	"fashion-buddy-be/internal/model"
	"fashion-buddy-be/internal/repository/contract"
	"fashion-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShoppingMapper
}

func NewShoppingRepository(db *gorm.DB) contract.ShoppingRepository {
	return &ShoppingRepositoryImpl{
		db:     db,
		mapper: mapper.NewShoppingMapper(),
	}
}

func (r *ShoppingRepositoryImpl) Create(ctx context.Context, rec *entity.ShoppingRecommendation) error {
	m := r.mapper.ToModel(rec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rec = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShoppingRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ShoppingRecommendation, error) {
	var m model.ShoppingRecommendation
	query := specification.ByID{ID: id}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShoppingRepositoryImpl) FindAllBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.ShoppingRecommendation, error) {
	var models []*model.ShoppingRecommendation
	query := specification.BySessionID{SessionID: sessionId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at", Desc: false}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ShoppingRecommendation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
