package service

import (
	"context"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// Create validates and stores a new project. Status defaults to active.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	if err := normalizeProject(p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusActive
	}
	return s.repo.Create(ctx, p)
}

// List returns projects, featured first.
func (s *projectServiceImpl) List(ctx context.Context, includeArchived bool) ([]*model.Project, error) {
	return s.repo.List(ctx, includeArchived)
}

// GetByID returns a single project.
func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update validates and rewrites an existing project.
func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	if err := normalizeProject(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

// Delete removes a project.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateImageURL sets or clears the uploaded image URL.
func (s *projectServiceImpl) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	return s.repo.UpdateImageURL(ctx, id, imageURL)
}

func normalizeProject(p *model.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if p.Title == "" {
		return &ValidationError{Code: "title_required"}
	}
	if p.Description == "" {
		return &ValidationError{Code: "description_required"}
	}
	if p.Status != "" && p.Status != model.ProjectStatusActive && p.Status != model.ProjectStatusArchived {
		return &ValidationError{Code: "status_invalid"}
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return nil
}
