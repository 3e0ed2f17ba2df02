package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageHandler handles project image upload and deletion.
type ImageHandler struct {
	storage        storage.Storage
	projectService service.ProjectService
}

// NewImageHandler creates an ImageHandler over the given storage and
// project service.
func NewImageHandler(store storage.Storage, ps service.ProjectService) *ImageHandler {
	return &ImageHandler{storage: store, projectService: ps}
}

// Upload handles POST /api/projects/{id}/image (admin only).
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	projectID := r.PathValue("id")
	project, err := h.projectService.GetByID(r.Context(), projectID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content_type"})
		return
	}

	// Replace any previous image
	if project.ImageURL != "" {
		oldKey := strings.TrimPrefix(project.ImageURL, "/uploads/")
		_ = h.storage.Delete(r.Context(), oldKey)
	}

	key := path.Join("projects", projectID, uuid.NewString()+ext)
	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "project_id", projectID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	if err := h.projectService.UpdateImageURL(r.Context(), projectID, imageURL); err != nil {
		slog.Error("image url update failed", "error", err, "project_id", projectID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"image_url": imageURL})
}

// Delete handles DELETE /api/projects/{id}/image (admin only).
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireAdmin(w, r) {
		return
	}

	projectID := r.PathValue("id")
	project, err := h.projectService.GetByID(r.Context(), projectID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	if project.ImageURL != "" {
		oldKey := strings.TrimPrefix(project.ImageURL, "/uploads/")
		_ = h.storage.Delete(r.Context(), oldKey)
	}

	if err := h.projectService.UpdateImageURL(r.Context(), projectID, ""); err != nil {
		slog.Error("image url clear failed", "error", err, "project_id", projectID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
