package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=16"`
	Name        string `json:"name"`
}

type UpdateClientRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type ClientResponse struct {
	Id          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        *string   `json:"name"`
	LastActive  time.Time `json:"last_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	SessionType string    `json:"session_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InitiateConversationResponse struct {
	Client  ClientResponse  `json:"client"`
	Session SessionResponse `json:"session"`
}
