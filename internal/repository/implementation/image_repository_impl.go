package implementation

import (
	"context"
	"time"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/mapper"
	"fashion-buddy-be/internal/model"
	"fashion-buddy-be/internal/repository/contract"
	"fashion-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ImageMapper
}

func NewImageRepository(db *gorm.DB) contract.ImageRepository {
	return &ImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewImageMapper(),
	}
}

func (r *ImageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *entity.Image) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *ImageRepositoryImpl) FindExpired(ctx context.Context, now time.Time) ([]*entity.Image, error) {
	return r.FindAll(ctx, specification.ExpiredBefore{Time: now})
}

func (r *ImageRepositoryImpl) FindBySessionAndType(ctx context.Context, sessionId uuid.UUID, imageType string) ([]*entity.Image, error) {
	return r.FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByImageType{ImageType: imageType},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
}

func (r *ImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Image, error) {
	var models []*model.Image
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Image, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ImageRepositoryImpl) DeleteAllByIds(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Image{}).Error
}
