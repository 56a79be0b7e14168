package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"prepmate-backend/internal/importer"
	"prepmate-backend/internal/middleware"
	"prepmate-backend/internal/models"
	"prepmate-backend/internal/repository"
)

type ImportHandler struct {
	setRepo *repository.QuestionSetRepo
}

func NewImportHandler(setRepo *repository.QuestionSetRepo) *ImportHandler {
	return &ImportHandler{setRepo: setRepo}
}

// ImportQuiz parses an uploaded .xlsx question sheet. The full ImportResult
// (questions plus row-scoped errors) goes back to the client so it can show
// which rows were rejected. With save=true and a clean parse, the questions
// are stored as a question set.
func (h *ImportHandler) ImportQuiz(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		writeJSON(w, http.StatusUnsupportedMediaType, errorResp("UNSUPPORTED_FORMAT", "Only .xlsx files are supported", r))
		return
	}

	result := importer.ImportQuiz(file)

	if result.Success && r.FormValue("save") == "true" {
		userID := middleware.GetUserID(r.Context())

		var domainID *uuid.UUID
		if id, err := uuid.Parse(r.FormValue("domain_id")); err == nil {
			domainID = &id
		}

		title := r.FormValue("title")
		if title == "" {
			title = strings.TrimSuffix(header.Filename, ".xlsx")
		}

		questionsBytes, _ := json.Marshal(result.Questions)
		set := &models.QuestionSet{
			UserID:        userID,
			DomainID:      domainID,
			Title:         title,
			Source:        "imported",
			QuestionsJSON: questionsBytes,
			QuestionCount: len(result.Questions),
		}
		if err := h.setRepo.Create(r.Context(), set); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save question set", r))
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"set_id": set.ID,
			"result": result,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Validate runs the standalone validation pass over a posted question list.
func (h *ImportHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var questions []models.QuizQuestion
	if err := json.NewDecoder(r.Body).Decode(&questions); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	writeJSON(w, http.StatusOK, importer.ValidateQuizQuestions(questions))
}
