package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"google.golang.org/api/option"

	"prepmate-backend/internal/evaluation"
	"prepmate-backend/internal/models"
	"prepmate-backend/internal/parse"
)

type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	redis    *redis.Client
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(apiKey string, concurrentReqs int, redisClient *redis.Client) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.4)
	model.SetTopP(0.95)

	// Token bucket for rate limiting
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:   client,
		model:    model,
		redis:    redisClient,
		rateChan: rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// PublishUpdate sends a WebSocket update via Redis pub/sub
func (s *GeminiService) PublishUpdate(ctx context.Context, userID uuid.UUID, msg models.WSMessage) {
	data, _ := json.Marshal(msg)
	s.redis.Publish(ctx, fmt.Sprintf("user_events:%s", userID.String()), string(data))
}

// GenerateQuizQuestions asks the model for multiple-choice questions in the
// documented numbered-list layout and parses whatever comes back. Upstream
// failures return an error; layout deviations do not — they surface as a
// short or empty Outcome with warnings.
func (s *GeminiService) GenerateQuizQuestions(ctx context.Context, domainName string, count int) (parse.Outcome[models.QuizQuestion], error) {
	var out parse.Outcome[models.QuizQuestion]

	if err := s.acquireRate(ctx); err != nil {
		return out, err
	}
	defer s.releaseRate()

	prompt := BuildQuestionPrompt(models.QuestionTypeQuiz, domainName, count)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return out, fmt.Errorf("Gemini API error: %w", err)
	}

	return parse.ParseQuizResponse(extractText(resp)), nil
}

// GenerateDescriptiveQuestions is the open-ended counterpart of
// GenerateQuizQuestions.
func (s *GeminiService) GenerateDescriptiveQuestions(ctx context.Context, domainName string, count int) (parse.Outcome[models.DescriptiveQuestion], error) {
	var out parse.Outcome[models.DescriptiveQuestion]

	if err := s.acquireRate(ctx); err != nil {
		return out, err
	}
	defer s.releaseRate()

	prompt := BuildQuestionPrompt(models.QuestionTypeDescriptive, domainName, count)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return out, fmt.Errorf("Gemini API error: %w", err)
	}

	return parse.ParseDescriptiveResponse(extractText(resp)), nil
}

// GenerateQuizFromResume grounds quiz generation in extracted resume text.
func (s *GeminiService) GenerateQuizFromResume(ctx context.Context, domainName string, count int, resumeText string) (parse.Outcome[models.QuizQuestion], error) {
	var out parse.Outcome[models.QuizQuestion]

	if err := s.acquireRate(ctx); err != nil {
		return out, err
	}
	defer s.releaseRate()

	prompt := BuildResumePrompt(models.QuestionTypeQuiz, domainName, count, resumeText)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return out, fmt.Errorf("Gemini API error: %w", err)
	}

	return parse.ParseQuizResponse(extractText(resp)), nil
}

// GenerateModelAnswer produces the reference answer a spoken response is
// scored against.
func (s *GeminiService) GenerateModelAnswer(ctx context.Context, question string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(BuildModelAnswerPrompt(question)))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	answer := strings.TrimSpace(extractText(resp))
	if answer == "" {
		return "", fmt.Errorf("Gemini returned an empty model answer")
	}
	return answer, nil
}

// EvaluateAnswer scores a candidate answer against a model answer. The model
// is asked for a bare JSON object but frequently fences or wraps it anyway,
// so the response goes through the staged extractor. The second-person
// rewrite is NOT applied here; callers that show feedback to the candidate
// do that themselves.
func (s *GeminiService) EvaluateAnswer(ctx context.Context, userAnswer, modelAnswer string) (evaluation.Result, error) {
	if err := s.acquireRate(ctx); err != nil {
		return evaluation.Result{}, err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(BuildEvaluationPrompt(userAnswer, modelAnswer)))
	if err != nil {
		return evaluation.Result{}, fmt.Errorf("Gemini API error: %w", err)
	}

	rawText := strings.TrimSpace(extractText(resp))

	// A well-behaved response is already the payload. Anything else is
	// treated as a feedback string and left to the extractor's fallbacks.
	payload := json.RawMessage(rawText)
	if !strings.HasPrefix(rawText, "{") || !json.Valid(payload) {
		wrapped, _ := json.Marshal(map[string]string{"feedback": rawText})
		payload = wrapped
	}

	return evaluation.Extract(payload), nil
}

// TranscribeAudio uses the Gemini File API to transcribe a recorded answer.
func (s *GeminiService) TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	file, err := s.client.UploadFile(ctx, "", bytes.NewReader(audio), &genai.UploadFileOptions{
		DisplayName: "interview-answer",
		MIMEType:    mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to Gemini: %w", err)
	}

	// Ensure remote file is cleaned up
	defer s.client.DeleteFile(context.Background(), file.Name)

	// Wait until file is active
	for i := 0; i < 20; i++ {
		current, getErr := s.client.GetFile(ctx, file.Name)
		if getErr != nil {
			return "", fmt.Errorf("failed to get uploaded file status: %w", getErr)
		}

		if current.State == genai.FileStateActive {
			file = current
			break
		}
		if current.State == genai.FileStateFailed {
			return "", fmt.Errorf("Gemini failed to process uploaded audio file")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	if file.State != genai.FileStateActive {
		return "", fmt.Errorf("audio file did not become active in time")
	}

	prompt := "Transcribe the provided audio verbatim. Return plain text only, without markdown, headers, or explanations."

	resp, err := s.model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.FileData{MIMEType: mimeType, URI: file.URI},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini transcription error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("Gemini returned empty transcription")
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
