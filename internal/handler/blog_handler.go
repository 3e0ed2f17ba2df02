package handler

import (
	"encoding/json"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// BlogHandler handles the public blog views and admin CRUD.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a BlogHandler with the given service.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// blogRequest is the JSON body for create and update.
type blogRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

func (req *blogRequest) toModel() *model.BlogPost {
	return &model.BlogPost{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
}

// List handles GET /api/blog. Admins see unpublished drafts too.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	publishedOnly := !isAdmin(r)
	posts, err := h.blogService.List(r.Context(), publishedOnly)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if posts == nil {
		posts = []*model.BlogPost{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.BlogPost{"posts": posts})
}

// GetBySlug handles GET /api/blog/{slug}. Each successful fetch
// increments the post's view counter by exactly one.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, err := h.blogService.FetchBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(post)
}

// Create handles POST /api/blog (admin only).
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	post := req.toModel()
	if err := h.blogService.Create(r.Context(), post); err != nil {
		writeMutationError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(post)
}

// Update handles PUT /api/blog/{id} (admin only).
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	var req blogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	post := req.toModel()
	post.ID = r.PathValue("id")
	if err := h.blogService.Update(r.Context(), post); err != nil {
		writeMutationError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(post)
}

// Delete handles DELETE /api/blog/{id} (admin only).
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	if err := h.blogService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeLookupError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
