package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
)

// PortfolioHandler handles the portfolio document and its sub-lists.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a PortfolioHandler with the given service.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Get handles GET /api/portfolio. A defaulted document is created on the
// first read, so this never answers 404.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.portfolioService.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/portfolio. Answers 400 if a document already exists.
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.portfolioService.Create(r.Context(), &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &p)
}

// updatePortfolioRequest is the expected JSON body for PUT /api/portfolio.
// Only the hero section is merged; absent fields keep their stored values.
type updatePortfolioRequest struct {
	Hero *model.HeroPatch `json:"hero"`
}

// Update handles PUT /api/portfolio.
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	var patch model.HeroPatch
	if req.Hero != nil {
		patch = *req.Hero
	}

	p, err := h.portfolioService.UpdateHero(r.Context(), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/portfolio (admin reset).
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.portfolioService.Delete(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// UpdateSkills handles PUT /api/portfolio/skills. Categories with a
// non-empty replacement list are replaced; the rest are kept.
func (h *PortfolioHandler) UpdateSkills(w http.ResponseWriter, r *http.Request) {
	var patch model.SkillsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	p, err := h.portfolioService.UpdateSkills(r.Context(), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateSettings handles PUT /api/portfolio/settings.
func (h *PortfolioHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch model.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	p, err := h.portfolioService.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// entryID parses the {id} path value of a sub-list route.
func entryID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------------

// AddEducation handles POST /api/portfolio/education. Responds with the
// entire updated list.
func (h *PortfolioHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	var entry model.Education
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.AddEducation(r.Context(), entry)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// UpdateEducation handles PUT /api/portfolio/education/{id}.
func (h *PortfolioHandler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var patch model.EducationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.UpdateEducation(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteEducation handles DELETE /api/portfolio/education/{id}.
func (h *PortfolioHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	list, err := h.portfolioService.DeleteEducation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

// AddExperience handles POST /api/portfolio/experience.
func (h *PortfolioHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var entry model.Experience
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.AddExperience(r.Context(), entry)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// UpdateExperience handles PUT /api/portfolio/experience/{id}.
func (h *PortfolioHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var patch model.ExperiencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.UpdateExperience(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteExperience handles DELETE /api/portfolio/experience/{id}.
func (h *PortfolioHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	list, err := h.portfolioService.DeleteExperience(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// AddProject handles POST /api/portfolio/projects.
func (h *PortfolioHandler) AddProject(w http.ResponseWriter, r *http.Request) {
	var entry model.Project
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.AddProject(r.Context(), entry)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// UpdateProject handles PUT /api/portfolio/projects/{id}.
func (h *PortfolioHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var patch model.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	list, err := h.portfolioService.UpdateProject(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteProject handles DELETE /api/portfolio/projects/{id}.
func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	list, err := h.portfolioService.DeleteProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
