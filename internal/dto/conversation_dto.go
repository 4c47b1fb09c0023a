package dto

import "github.com/google/uuid"

type SendTextRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required"`
}

type SendMediaRequest struct {
	To        string   `json:"to" validate:"required"`
	Body      string   `json:"body"`
	MediaURLs []string `json:"media_urls" validate:"required,min=1"`
}

type CleanupResponse struct {
	Reclaimed int `json:"reclaimed"`
}

type OutboundMessage struct {
	To        string   `json:"to"`
	Body      string   `json:"body"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

type SessionsByClientRequest struct {
	ClientId uuid.UUID
}
