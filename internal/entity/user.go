package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID
	PhoneNumber string
	Name        *string
	LastActive  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Session struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SessionType string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
