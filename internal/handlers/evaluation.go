package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"prepmate-backend/internal/middleware"
	"prepmate-backend/internal/models"
	"prepmate-backend/internal/repository"
	"prepmate-backend/internal/services"
)

type EvaluationHandler struct {
	gemini        *services.GeminiService
	interviewRepo *repository.InterviewRepo
	jobRepo       *repository.JobRepo
	redis         *redis.Client
	storagePath   string
}

func NewEvaluationHandler(gemini *services.GeminiService, interviewRepo *repository.InterviewRepo, jobRepo *repository.JobRepo, redisClient *redis.Client, storagePath string) *EvaluationHandler {
	return &EvaluationHandler{
		gemini:        gemini,
		interviewRepo: interviewRepo,
		jobRepo:       jobRepo,
		redis:         redisClient,
		storagePath:   storagePath,
	}
}

// Evaluate scores a typed answer synchronously. The response is the raw
// extraction result; the second-person feedback rewrite is the client's (or
// the analysis pipeline's) concern, matching the original proxy contract.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.UserAnswer == "" || req.ModelAnswer == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userAnswer and modelAnswer are required"})
		return
	}

	result, err := h.gemini.EvaluateAnswer(r.Context(), req.UserAnswer, req.ModelAnswer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to evaluate answer"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Analyze accepts recorded answer audio for a mock interview and queues the
// transcribe/evaluate pipeline. Results arrive over the WebSocket hub.
func (h *EvaluationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	interviewID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid interview ID", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	interview, err := h.interviewRepo.GetByID(r.Context(), interviewID)
	if err != nil || interview.UserID != userID {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Interview not found", r))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 50*1024*1024)

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No audio file provided", r))
		return
	}
	defer file.Close()

	question := r.FormValue("question")
	if question == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Question text is required", r))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/mp4"
	}

	// Stash the audio on disk; the worker picks it up from there.
	audioPath := filepath.Join(h.storagePath, "audio", uuid.NewString()+filepath.Ext(header.Filename))
	if err := saveUpload(file, audioPath); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store audio", r))
		return
	}

	answer := &models.InterviewAnswer{
		InterviewID: interviewID,
		Question:    question,
	}
	if err := h.interviewRepo.CreateAnswer(r.Context(), answer); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to record answer", r))
		return
	}

	configBytes, _ := json.Marshal(models.AnalysisConfig{
		InterviewID: interviewID,
		AnswerID:    answer.ID,
		Question:    question,
		AudioPath:   audioPath,
		MIMEType:    mimeType,
	})

	job := &models.Job{
		UserID:      userID,
		Type:        "answer-analysis",
		ReferenceID: answer.ID,
		ConfigJSON:  configBytes,
	}
	if err := h.jobRepo.Create(r.Context(), job); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create job", r))
		return
	}

	jobBytes, _ := json.Marshal(job)
	h.redis.LPush(r.Context(), "queue:answer-analysis", string(jobBytes))

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":    job.ID,
		"answer_id": answer.ID,
	})
}

func saveUpload(src io.Reader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
