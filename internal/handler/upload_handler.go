package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"path"

	"github.com/devfolio/backend/internal/storage"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// UploadHandler relays an uploaded image to the configured storage driver
// and returns its public URL.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates an UploadHandler over the given storage.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// uploadResponse mirrors the shape the admin UI expects.
type uploadResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    uploadData `json:"data"`
}

type uploadData struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Upload handles POST /api/upload (multipart, field name "image").
// Size and type are checked before any transfer to the storage driver.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "file_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_multipart")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image_required")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	key := path.Join("portfolio", uuid.NewString()+ext)
	obj, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		var upstream *storage.UpstreamError
		if errors.As(err, &upstream) {
			status := upstream.StatusCode
			if status == 0 {
				status = http.StatusBadGateway
			}
			slog.Error("upload relay failed", "error", err, "key", key)
			writeError(w, status, "upstream_failed")
			return
		}
		slog.Error("upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		Data:    uploadData{URL: obj.URL, PublicID: obj.PublicID},
	})
}
