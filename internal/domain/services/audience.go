package services

import (
	"context"

	"traction/internal/domain/models"
)

// AudienceService handles audience segment business logic.
type AudienceService interface {
	CreateAudience(ctx context.Context, req *CreateAudienceRequest) (*models.Audience, error)
	GetAudience(ctx context.Context, id string) (*models.Audience, error)
	UpdateAudience(ctx context.Context, id string, req *UpdateAudienceRequest) (*models.Audience, error)
	DeleteAudience(ctx context.Context, id string) error
	ListAudiences(ctx context.Context) ([]models.Audience, error)
}

// CreateAudienceRequest represents an audience creation request.
type CreateAudienceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Size        int      `json:"size,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateAudienceRequest represents an audience update request.
type UpdateAudienceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Size        *int     `json:"size,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
