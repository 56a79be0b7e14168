package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prepmate-backend/internal/models"
)

// ─── Question Handler Tests ───

func TestGenerate_InvalidBody(t *testing.T) {
	h := NewQuestionHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/generate-question", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected plain error field in response")
	}
}

func TestGenerate_MissingDomain(t *testing.T) {
	h := NewQuestionHandler(nil, nil)

	body, _ := json.Marshal(models.GenerateQuestionRequest{QuestionType: models.QuestionTypeQuiz})
	req := httptest.NewRequest(http.MethodPost, "/generate-question", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
}

func TestGenerate_UnknownQuestionType(t *testing.T) {
	h := NewQuestionHandler(nil, nil)

	body := `{"questionType": "essay", "domain": {"name": "Software Engineering"}}`
	req := httptest.NewRequest(http.MethodPost, "/generate-question", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown question type, got %d", rr.Code)
	}
}

// ─── Evaluation Handler Tests ───

func TestEvaluate_MissingFields(t *testing.T) {
	h := NewEvaluationHandler(nil, nil, nil, nil, "")

	tests := []struct {
		name string
		body string
	}{
		{"missing userAnswer", `{"modelAnswer": "the reference"}`},
		{"missing modelAnswer", `{"userAnswer": "my answer"}`},
		{"empty body", `{}`},
		{"invalid json", `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/evaluate-answer", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Evaluate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}

			var resp map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("Expected plain error field in response")
			}
		})
	}
}

// ─── Import Handler Tests ───

func TestImportQuiz_NoFile(t *testing.T) {
	h := NewImportHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/import", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rr := httptest.NewRecorder()

	h.ImportQuiz(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
}

func TestValidate_ReportsViolations(t *testing.T) {
	h := NewImportHandler(nil)

	questions := []models.QuizQuestion{
		{Question: "What is a goroutine?", Options: []string{"A thread", "A lightweight routine"}, CorrectIndex: 1},
		{Question: "", Options: []string{"A", "B"}, CorrectIndex: 0},
		{Question: "Pick one", Options: []string{"A", "B"}, CorrectIndex: 5},
	}
	body, _ := json.Marshal(questions)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/validate", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Validate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var result struct {
		IsValid bool     `json:"is_valid"`
		Errors  []string `json:"errors"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result.IsValid {
		t.Error("Expected validation to fail")
	}
	if len(result.Errors) != 2 {
		t.Errorf("Expected 2 errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

// ─── Shared Helper Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, map[string]string{"message": "Created"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", ct)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["message"] != "Created" {
		t.Errorf("Expected message 'Created', got %q", resp["message"])
	}
}

func TestErrorResp_CarriesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp := errorResp("NOT_FOUND", "Interview not found", req)

	if resp.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %q", resp.Error.Code)
	}
	if resp.Error.RequestID != "req-123" {
		t.Errorf("Expected request ID 'req-123', got %q", resp.Error.RequestID)
	}
}

func TestEmptyIfNil(t *testing.T) {
	if got := emptyIfNil[models.QuizQuestion](nil); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", got)
	}

	in := []models.QuizQuestion{{Question: "q"}}
	if got := emptyIfNil(in); len(got) != 1 {
		t.Errorf("Expected slice passed through, got %v", got)
	}
}
