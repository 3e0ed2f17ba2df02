package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// BlogService defines the business logic for blog posts.
type BlogService interface {
	Create(ctx context.Context, p *model.BlogPost) error
	List(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error)
	// FetchBySlug returns a published post and counts the view.
	FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	Update(ctx context.Context, p *model.BlogPost) error
	Delete(ctx context.Context, id string) error
}
