package models

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	DomainID      *uuid.UUID `json:"domain_id"`
	Kind          string     `json:"kind"` // "quiz" | "descriptive" | "mock"
	Score         *float64   `json:"score"`
	QuestionCount int        `json:"question_count"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// InterviewAnswer holds one answered question within an interview, including
// the evaluation produced for mock interviews.
type InterviewAnswer struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	Position    int       `json:"position"`
	Question    string    `json:"question"`
	UserAnswer  string    `json:"user_answer"`
	ModelAnswer *string   `json:"model_answer"`
	Score       *float64  `json:"score"`
	Feedback    *string   `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateInterviewRequest struct {
	DomainID      *uuid.UUID `json:"domain_id"`
	Kind          string     `json:"kind"`
	QuestionCount int        `json:"question_count"`
}

type CompleteInterviewRequest struct {
	Score float64 `json:"score"`
}

type SubmitAnswerRequest struct {
	Position   int    `json:"position"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

// DomainStat is one row of the dashboard aggregation.
type DomainStat struct {
	DomainID   *uuid.UUID `json:"domain_id"`
	DomainName string     `json:"domain_name"`
	Interviews int        `json:"interviews"`
	AvgScore   *float64   `json:"avg_score"`
}

type DashboardSummary struct {
	TotalInterviews int          `json:"total_interviews"`
	AverageScore    *float64     `json:"average_score"`
	Domains         []DomainStat `json:"domains"`
	Recent          []*Interview `json:"recent"`
}
