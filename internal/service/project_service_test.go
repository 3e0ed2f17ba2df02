package service

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

type mockProjectRepository struct {
	createFunc   func(ctx context.Context, p *model.Project) error
	updateFunc   func(ctx context.Context, p *model.Project) error
	imageURLFunc func(ctx context.Context, id, imageURL string) error
}

func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) List(ctx context.Context, includeArchived bool) ([]*model.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error { return nil }

func (m *mockProjectRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if m.imageURLFunc != nil {
		return m.imageURLFunc(ctx, id, imageURL)
	}
	return nil
}

// TestProjectService_Create_Validation checks required fields and the
// status whitelist.
func TestProjectService_Create_Validation(t *testing.T) {
	cases := []struct {
		project  *model.Project
		wantCode string
	}{
		{&model.Project{Description: "d"}, "title_required"},
		{&model.Project{Title: "t"}, "description_required"},
		{&model.Project{Title: "t", Description: "d", Status: "hidden"}, "status_invalid"},
	}
	for _, tc := range cases {
		svc := NewProjectService(&mockProjectRepository{})
		err := svc.Create(context.Background(), tc.project)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Code != tc.wantCode {
			t.Errorf("expected %s, got %v", tc.wantCode, err)
		}
	}
}

// TestProjectService_Create_Defaults verifies status and tech stack
// defaults.
func TestProjectService_Create_Defaults(t *testing.T) {
	var created *model.Project
	repo := &mockProjectRepository{
		createFunc: func(ctx context.Context, p *model.Project) error {
			created = p
			return nil
		},
	}
	svc := NewProjectService(repo)

	if err := svc.Create(context.Background(), &model.Project{Title: "t", Description: "d"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != model.ProjectStatusActive {
		t.Errorf("expected default status active, got %q", created.Status)
	}
	if created.TechStack == nil {
		t.Error("expected empty tech stack slice, got nil")
	}
}

// TestProjectService_Update_KeepsArchivedStatus verifies archived is
// accepted on update.
func TestProjectService_Update_KeepsArchivedStatus(t *testing.T) {
	var updated *model.Project
	repo := &mockProjectRepository{
		updateFunc: func(ctx context.Context, p *model.Project) error {
			updated = p
			return nil
		},
	}
	svc := NewProjectService(repo)

	p := &model.Project{ID: "id-1", Title: "t", Description: "d", Status: model.ProjectStatusArchived}
	if err := svc.Update(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.ProjectStatusArchived {
		t.Errorf("expected archived preserved, got %q", updated.Status)
	}
}

// TestProjectService_UpdateImageURL_Forwards verifies the delegation,
// including clearing with an empty URL.
func TestProjectService_UpdateImageURL_Forwards(t *testing.T) {
	var gotID, gotURL string
	repo := &mockProjectRepository{
		imageURLFunc: func(ctx context.Context, id, imageURL string) error {
			gotID, gotURL = id, imageURL
			return nil
		},
	}
	svc := NewProjectService(repo)

	if err := svc.UpdateImageURL(context.Background(), "id-1", "/uploads/projects/id-1/a.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "id-1" || gotURL != "/uploads/projects/id-1/a.png" {
		t.Errorf("unexpected forward (%s, %s)", gotID, gotURL)
	}

	if err := svc.UpdateImageURL(context.Background(), "id-1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotURL != "" {
		t.Errorf("expected cleared URL forwarded, got %q", gotURL)
	}
}
