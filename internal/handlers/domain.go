package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"prepmate-backend/internal/middleware"
	"prepmate-backend/internal/models"
	"prepmate-backend/internal/repository"
)

type DomainHandler struct {
	domainRepo *repository.DomainRepo
	setRepo    *repository.QuestionSetRepo
}

func NewDomainHandler(domainRepo *repository.DomainRepo, setRepo *repository.QuestionSetRepo) *DomainHandler {
	return &DomainHandler{domainRepo: domainRepo, setRepo: setRepo}
}

func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	domains, err := h.domainRepo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch domains", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"domains": domains})
}

func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Domain
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Domain name is required", r))
		return
	}

	if err := h.domainRepo.Create(r.Context(), &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create domain", r))
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid domain ID", r))
		return
	}

	domain, err := h.domainRepo.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Domain not found", r))
		return
	}

	writeJSON(w, http.StatusOK, domain)
}

// ListSets returns the caller's saved question sets.
func (h *DomainHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	sets, err := h.setRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch question sets", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"question_sets": sets})
}

func (h *DomainHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid question set ID", r))
		return
	}

	set, err := h.setRepo.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Question set not found", r))
		return
	}

	if set.UserID != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return
	}

	writeJSON(w, http.StatusOK, set)
}
