package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context, includeArchived bool) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}
