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

type ColorAnalysisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ColorAnalysisMapper
}

func NewColorAnalysisRepository(db *gorm.DB) contract.ColorAnalysisRepository {
	return &ColorAnalysisRepositoryImpl{
		db:     db,
		mapper: mapper.NewColorAnalysisMapper(),
	}
}

func (r *ColorAnalysisRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ColorAnalysisRepositoryImpl) Create(ctx context.Context, analysis *entity.ColorAnalysis) error {
	m := r.mapper.ToModel(analysis)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*analysis = *r.mapper.ToEntity(m)
	return nil
}

func (r *ColorAnalysisRepositoryImpl) FindLatestBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ColorAnalysis, error) {
	var m model.ColorAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ColorAnalysisRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ColorAnalysis, error) {
	var models []*model.ColorAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ColorAnalysis, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
