package service

import (
	"context"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/repository/specification"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/apperrors"
)

type IClientService interface {
	List(ctx context.Context) ([]*dto.ClientResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	// Create registers a client and opens a welcome conversation with them.
	Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.InitiateConversationResponse, error)
	Update(ctx context.Context, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Sessions(ctx context.Context, clientId uuid.UUID) ([]*dto.SessionResponse, error)
}

type clientService struct {
	uowFactory   unitofwork.RepositoryFactory
	conversation IConversationService
}

func NewClientService(uowFactory unitofwork.RepositoryFactory, conversation IConversationService) IClientService {
	return &clientService{
		uowFactory:   uowFactory,
		conversation: conversation,
	}
}

func (s *clientService) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ClientResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toClientResponse(u))
	}
	return out, nil
}

func (s *clientService) Show(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("client not found")
	}
	return toClientResponse(user), nil
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.InitiateConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation("client with this phone number already exists")
	}

	return s.conversation.Initiate(ctx, req.PhoneNumber, req.Name)
}

func (s *clientService) Update(ctx context.Context, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("client not found")
	}

	user.Name = &req.Name
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toClientResponse(user), nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("client not found")
	}
	return uow.UserRepository().Delete(ctx, id)
}

func (s *clientService) Sessions(ctx context.Context, clientId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: clientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, &dto.SessionResponse{
			Id:          sess.Id,
			UserId:      sess.UserId,
			SessionType: sess.SessionType,
			Status:      sess.Status,
			CreatedAt:   sess.CreatedAt,
			UpdatedAt:   sess.UpdatedAt,
		})
	}
	return out, nil
}

func toClientResponse(u *entity.User) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:          u.Id,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		LastActive:  u.LastActive,
		CreatedAt:   u.CreatedAt,
	}
}
