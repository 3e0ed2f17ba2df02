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

type mockBlogService struct {
	createFunc      func(ctx context.Context, p *model.BlogPost) error
	listFunc        func(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error)
	fetchBySlugFunc func(ctx context.Context, slug string) (*model.BlogPost, error)
	updateFunc      func(ctx context.Context, p *model.BlogPost) error
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockBlogService) Create(ctx context.Context, p *model.BlogPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockBlogService) List(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, publishedOnly)
	}
	return nil, nil
}

func (m *mockBlogService) FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if m.fetchBySlugFunc != nil {
		return m.fetchBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockBlogService) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return nil, repository.ErrNotFound
}

func (m *mockBlogService) Update(ctx context.Context, p *model.BlogPost) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockBlogService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// TestBlogList_PublishedOnlyForPublic checks anonymous callers see
// only published posts while admins see drafts.
func TestBlogList_PublishedOnlyForPublic(t *testing.T) {
	var gotPublishedOnly bool
	h := NewBlogHandler(&mockBlogService{
		listFunc: func(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error) {
			gotPublishedOnly = publishedOnly
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if !gotPublishedOnly {
		t.Error("expected publishedOnly=true for anonymous callers")
	}

	rec = httptest.NewRecorder()
	h.List(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/blog", nil)))
	if gotPublishedOnly {
		t.Error("expected publishedOnly=false for admins")
	}
}

// TestBlogList_EmptyIsArray checks an empty listing encodes as [].
func TestBlogList_EmptyIsArray(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"posts":[]`) {
		t.Errorf("expected posts to encode as [], got %s", rec.Body.String())
	}
}

// TestBlogGetBySlug_Found checks the counted fetch returns the post.
func TestBlogGetBySlug_Found(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		fetchBySlugFunc: func(ctx context.Context, slug string) (*model.BlogPost, error) {
			return &model.BlogPost{Slug: slug, Title: "My Post", Views: 8}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blog/my-post", nil)
	req.SetPathValue("slug", "my-post")
	rec := httptest.NewRecorder()
	h.GetBySlug(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var post model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&post); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if post.Slug != "my-post" || post.Views != 8 {
		t.Errorf("unexpected post %+v", post)
	}
}

// TestBlogGetBySlug_NotFound checks an unknown or unpublished slug is
// a 404.
func TestBlogGetBySlug_NotFound(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/api/blog/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()
	h.GetBySlug(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "not_found" {
		t.Errorf("expected not_found, got %q", got)
	}
}

// TestBlogCreate_AdminOnly checks the mutation endpoints reject
// unauthenticated callers.
func TestBlogCreate_AdminOnly(t *testing.T) {
	called := false
	h := NewBlogHandler(&mockBlogService{
		createFunc: func(ctx context.Context, p *model.BlogPost) error {
			called = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/blog",
		strings.NewReader(`{"title":"T","content":"body"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("expected the service not to run")
	}
}

// TestBlogCreate_Success checks a created post is returned with a 201.
func TestBlogCreate_Success(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		createFunc: func(ctx context.Context, p *model.BlogPost) error {
			p.ID = "post-1"
			p.Slug = "t"
			return nil
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/blog",
		strings.NewReader(`{"title":"T","content":"body","published":true}`)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var post model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&post); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if post.ID != "post-1" || !post.Published {
		t.Errorf("unexpected post %+v", post)
	}
}

// TestBlogCreate_SlugTaken checks the duplicate-slug rejection is a
// 400 with the code.
func TestBlogCreate_SlugTaken(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		createFunc: func(ctx context.Context, p *model.BlogPost) error {
			return &service.ValidationError{Code: "slug_taken"}
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/blog",
		strings.NewReader(`{"title":"T","content":"body","slug":"taken"}`)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "slug_taken" {
		t.Errorf("expected slug_taken, got %q", got)
	}
}

// TestBlogUpdate_TakesIDFromPath checks the path id wins over any id
// in the body.
func TestBlogUpdate_TakesIDFromPath(t *testing.T) {
	var gotID string
	h := NewBlogHandler(&mockBlogService{
		updateFunc: func(ctx context.Context, p *model.BlogPost) error {
			gotID = p.ID
			return nil
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodPut, "/api/blog/post-1",
		strings.NewReader(`{"title":"T","content":"body"}`)))
	req.SetPathValue("id", "post-1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "post-1" {
		t.Errorf("expected path id post-1, got %q", gotID)
	}
}

// TestBlogDelete_NotFound checks deleting a missing post is a 404.
func TestBlogDelete_NotFound(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/blog/missing", nil))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
