package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// blogServiceImpl is the production implementation of BlogService.
type blogServiceImpl struct {
	repo repository.BlogRepository
}

// NewBlogService creates a BlogService backed by the given repository.
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogServiceImpl{repo: repo}
}

// Create validates and stores a new post. A missing slug is derived
// from the title.
func (s *blogServiceImpl) Create(ctx context.Context, p *model.BlogPost) error {
	if err := normalizePost(p); err != nil {
		return err
	}
	err := s.repo.Create(ctx, p)
	if errors.Is(err, repository.ErrDuplicate) {
		return &ValidationError{Code: "slug_taken"}
	}
	return err
}

// List returns posts, newest first.
func (s *blogServiceImpl) List(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error) {
	return s.repo.List(ctx, publishedOnly)
}

// FetchBySlug returns a published post, incrementing its view counter
// by exactly one.
func (s *blogServiceImpl) FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.repo.FetchBySlug(ctx, slug)
}

// GetByID returns a post regardless of publish state (admin view).
func (s *blogServiceImpl) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Update validates and rewrites an existing post.
func (s *blogServiceImpl) Update(ctx context.Context, p *model.BlogPost) error {
	if err := normalizePost(p); err != nil {
		return err
	}
	err := s.repo.Update(ctx, p)
	if errors.Is(err, repository.ErrDuplicate) {
		return &ValidationError{Code: "slug_taken"}
	}
	return err
}

// Delete removes a post.
func (s *blogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalizePost(p *model.BlogPost) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Title == "" {
		return &ValidationError{Code: "title_required"}
	}
	if p.Content == "" {
		return &ValidationError{Code: "content_required"}
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if !slugPattern.MatchString(p.Slug) {
		return &ValidationError{Code: "slug_invalid"}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
