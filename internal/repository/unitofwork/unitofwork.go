package unitofwork

import (
	"context"

	"fashion-buddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	ImageRepository() contract.ImageRepository
	ColorAnalysisRepository() contract.ColorAnalysisRepository
	ShoppingRepository() contract.ShoppingRepository
}
