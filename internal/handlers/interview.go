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

type InterviewHandler struct {
	interviewRepo *repository.InterviewRepo
}

func NewInterviewHandler(interviewRepo *repository.InterviewRepo) *InterviewHandler {
	return &InterviewHandler{interviewRepo: interviewRepo}
}

func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	switch req.Kind {
	case "quiz", "descriptive", "mock":
	default:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Kind must be quiz, descriptive or mock", r))
		return
	}

	interview := &models.Interview{
		UserID:        middleware.GetUserID(r.Context()),
		DomainID:      req.DomainID,
		Kind:          req.Kind,
		QuestionCount: req.QuestionCount,
	}

	if err := h.interviewRepo.Create(r.Context(), interview); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create interview", r))
		return
	}

	writeJSON(w, http.StatusCreated, interview)
}

func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	interview, ok := h.ownedInterview(w, r)
	if !ok {
		return
	}

	answers, err := h.interviewRepo.ListAnswers(r.Context(), interview.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch answers", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"interview": interview,
		"answers":   answers,
	})
}

func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	interviews, err := h.interviewRepo.ListByUser(r.Context(), userID, 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch interviews", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"interviews": interviews})
}

func (h *InterviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	interview, ok := h.ownedInterview(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Question text is required", r))
		return
	}

	answer := &models.InterviewAnswer{
		InterviewID: interview.ID,
		Position:    req.Position,
		Question:    req.Question,
		UserAnswer:  req.UserAnswer,
	}

	if err := h.interviewRepo.CreateAnswer(r.Context(), answer); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to record answer", r))
		return
	}

	writeJSON(w, http.StatusCreated, answer)
}

func (h *InterviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	interview, ok := h.ownedInterview(w, r)
	if !ok {
		return
	}

	var req models.CompleteInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.interviewRepo.Complete(r.Context(), interview.ID, req.Score); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to complete interview", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Interview completed"})
}

func (h *InterviewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.interviewRepo.DashboardSummary(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to build dashboard", r))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ownedInterview loads the interview in the URL and enforces ownership.
func (h *InterviewHandler) ownedInterview(w http.ResponseWriter, r *http.Request) (*models.Interview, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid interview ID", r))
		return nil, false
	}

	interview, err := h.interviewRepo.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Interview not found", r))
		return nil, false
	}

	if interview.UserID != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return nil, false
	}

	return interview, true
}
