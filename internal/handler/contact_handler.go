package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin triage.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact. A supplied
// status is ignored; new messages always start unread.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact (public). All four fields are required;
// message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch {
	case req.Name == "":
		writeError(w, http.StatusBadRequest, "name_required")
		return
	case req.Email == "":
		writeError(w, http.StatusBadRequest, "email_required")
		return
	case req.Subject == "":
		writeError(w, http.StatusBadRequest, "subject_required")
		return
	case req.Message == "":
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	c := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), c); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/contact (admin).
// Query params: page, limit, status (unread/read/replied), search.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			opts.Page = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}

	page, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Stats handles GET /api/contact/stats (admin).
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /api/contact/{id} (admin).
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	c, err := h.contactService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateStatus handles PUT /api/contact/{id}/status (admin).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !model.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	c, err := h.contactService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/contact/{id} (admin).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
