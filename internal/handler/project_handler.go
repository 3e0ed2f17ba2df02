package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// isAdmin reports whether the request carries an admin identity,
// without writing a response.
func isAdmin(r *http.Request) bool {
	_, ok := auth.UserIDFromContext(r.Context())
	return ok && auth.IsAdminFromContext(r.Context())
}

// ProjectHandler handles the public project listing and admin CRUD.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectRequest is the JSON body for create and update.
type projectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GitHubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sort_order"`
	Status      string   `json:"status"`
}

func (req *projectRequest) toModel() *model.Project {
	return &model.Project{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GitHubURL:   req.GitHubURL,
		LiveURL:     req.LiveURL,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
		Status:      req.Status,
	}
}

// List handles GET /api/projects. Admins see archived projects too.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	includeArchived := isAdmin(r)
	projects, err := h.projectService.List(r.Context(), includeArchived)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.Project{"projects": projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(project)
}

// Create handles POST /api/projects (admin only).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	project := req.toModel()
	if err := h.projectService.Create(r.Context(), project); err != nil {
		writeMutationError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(project)
}

// Update handles PUT /api/projects/{id} (admin only).
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	project := req.toModel()
	project.ID = r.PathValue("id")
	if err := h.projectService.Update(r.Context(), project); err != nil {
		writeMutationError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(project)
}

// Delete handles DELETE /api/projects/{id} (admin only).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeLookupError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// writeLookupError maps a read/delete failure to 404 or 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
}

// writeMutationError maps a create/update failure to 400, 404 or 500.
func writeMutationError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": ve.Code})
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
	}
}
