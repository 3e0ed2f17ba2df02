package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

type mockProjectService struct {
	createFunc   func(ctx context.Context, p *model.Project) error
	listFunc     func(ctx context.Context, includeArchived bool) ([]*model.Project, error)
	getByIDFunc  func(ctx context.Context, id string) (*model.Project, error)
	updateFunc   func(ctx context.Context, p *model.Project) error
	deleteFunc   func(ctx context.Context, id string) error
	imageURLFunc func(ctx context.Context, id, imageURL string) error
}

func (m *mockProjectService) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) List(ctx context.Context, includeArchived bool) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, includeArchived)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectService) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if m.imageURLFunc != nil {
		return m.imageURLFunc(ctx, id, imageURL)
	}
	return nil
}

// TestProjectList_ArchivedVisibility checks archived projects are
// admin-only.
func TestProjectList_ArchivedVisibility(t *testing.T) {
	var gotIncludeArchived bool
	h := NewProjectHandler(&mockProjectService{
		listFunc: func(ctx context.Context, includeArchived bool) ([]*model.Project, error) {
			gotIncludeArchived = includeArchived
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	if gotIncludeArchived {
		t.Error("expected includeArchived=false for anonymous callers")
	}

	rec = httptest.NewRecorder()
	h.List(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/projects", nil)))
	if !gotIncludeArchived {
		t.Error("expected includeArchived=true for admins")
	}
}

// TestProjectList_EmptyIsArray checks an empty listing encodes as [].
func TestProjectList_EmptyIsArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	if !strings.Contains(rec.Body.String(), `"projects":[]`) {
		t.Errorf("expected projects to encode as [], got %s", rec.Body.String())
	}
}

// TestProjectGet_NotFound checks an unknown id is a 404.
func TestProjectGet_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// TestProjectCreate_Success checks a created project is returned with
// a 201.
func TestProjectCreate_Success(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project) error {
			p.ID = "proj-1"
			p.Status = model.ProjectStatusActive
			return nil
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"t","description":"d","tech_stack":["go"],"featured":true}`)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var project model.Project
	if err := json.NewDecoder(rec.Body).Decode(&project); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if project.ID != "proj-1" || !project.Featured || len(project.TechStack) != 1 {
		t.Errorf("unexpected project %+v", project)
	}
}

// TestProjectCreate_AdminOnly checks the mutation endpoints are gated.
func TestProjectCreate_AdminOnly(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"t","description":"d"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestProjectCreate_ValidationError checks the code reaches the body
// with a 400.
func TestProjectCreate_ValidationError(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project) error {
			return &service.ValidationError{Code: "title_required"}
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"description":"d"}`)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "title_required" {
		t.Errorf("expected title_required, got %q", got)
	}
}

// TestProjectUpdate_NotFound checks updating a missing project is a
// 404.
func TestProjectUpdate_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		updateFunc: func(ctx context.Context, p *model.Project) error {
			return repository.ErrNotFound
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPut, "/api/projects/missing",
		strings.NewReader(`{"title":"t","description":"d"}`)))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// TestProjectDelete_Success checks the ok body on delete.
func TestProjectDelete_Success(t *testing.T) {
	var deletedID string
	h := NewProjectHandler(&mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/projects/proj-1", nil))
	req.SetPathValue("id", "proj-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != "proj-1" {
		t.Errorf("expected proj-1 deleted, got %q", deletedID)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("expected ok body, got %s", rec.Body.String())
	}
}
