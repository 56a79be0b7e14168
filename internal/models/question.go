package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Question type identifiers used across generation, import and interviews.
const (
	QuestionTypeQuiz        = "quiz"
	QuestionTypeDescriptive = "descriptive"
)

// QuizQuestion is the unified multiple-choice record. CorrectIndex is always
// zero-based into Options, regardless of whether the question came from the
// AI generator (letter answers) or a spreadsheet import (1-based ordinals).
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// DescriptiveQuestion is an open-ended question with an optional hint.
type DescriptiveQuestion struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

type Domain struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionSet is a saved bank of quiz questions attached to a domain,
// produced either by the AI generator or a spreadsheet import.
type QuestionSet struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	DomainID      *uuid.UUID      `json:"domain_id"`
	Title         string          `json:"title"`
	Source        string          `json:"source"` // "generated" | "imported"
	QuestionsJSON json.RawMessage `json:"questions"`
	QuestionCount int             `json:"question_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

type GenerateQuestionRequest struct {
	QuestionType string    `json:"questionType"`
	Domain       DomainRef `json:"domain"`
	Count        int       `json:"count"`
}

// DomainRef mirrors the client payload, which sends the whole domain object
// but only the name matters for prompt construction.
type DomainRef struct {
	Name string `json:"name"`
}

type EvaluateAnswerRequest struct {
	UserAnswer  string `json:"userAnswer"`
	ModelAnswer string `json:"modelAnswer"`
}
