package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"prepmate-backend/internal/models"
	"prepmate-backend/internal/services"
)

type QuestionHandler struct {
	gemini *services.GeminiService
	resume *services.ResumeService
}

func NewQuestionHandler(gemini *services.GeminiService, resume *services.ResumeService) *QuestionHandler {
	return &QuestionHandler{gemini: gemini, resume: resume}
}

// Generate serves the question-generation endpoint the mobile client calls.
// Response contract is the legacy proxy one: {"questions": [...]} on success,
// {"error": "..."} with HTTP 500 when the upstream call fails. Layout
// deviations in the model output are not errors; they just shrink the list.
func (h *QuestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Domain.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "domain name is required"})
		return
	}

	switch req.QuestionType {
	case models.QuestionTypeDescriptive:
		out, err := h.gemini.GenerateDescriptiveQuestions(r.Context(), req.Domain.Name, req.Count)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate questions"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"questions": emptyIfNil(out.Questions),
			"warnings":  out.Warnings,
		})
	case models.QuestionTypeQuiz, "":
		out, err := h.gemini.GenerateQuizQuestions(r.Context(), req.Domain.Name, req.Count)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate questions"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"questions": emptyIfNil(out.Questions),
			"warnings":  out.Warnings,
		})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "questionType must be \"quiz\" or \"descriptive\""})
	}
}

// GenerateFromResume grounds quiz generation in an uploaded PDF resume.
func (h *QuestionHandler) GenerateFromResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	file, _, err := r.FormFile("resume")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No resume file provided", r))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Failed to read resume file", r))
		return
	}

	text, err := h.resume.ExtractText(data)
	if err != nil {
		writeJSON(w, http.StatusUnsupportedMediaType, errorResp("UNSUPPORTED_FORMAT", "Could not extract text from resume", r))
		return
	}

	domainName := r.FormValue("domain")
	if domainName == "" {
		domainName = "the candidate's field"
	}
	count, _ := strconv.Atoi(r.FormValue("count"))

	out, err := h.gemini.GenerateQuizFromResume(r.Context(), domainName, count, text)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to generate questions", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": emptyIfNil(out.Questions),
		"warnings":  out.Warnings,
	})
}

// emptyIfNil keeps the JSON field an array rather than null when no
// questions were recovered.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
