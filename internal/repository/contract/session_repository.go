package contract

import (
	"context"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, session *entity.Session) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// FindActiveByUser returns the newest active session for the user, or
	// nil when the user has none.
	FindActiveByUser(ctx context.Context, userId uuid.UUID) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
}
