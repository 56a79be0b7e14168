package importer

import (
	"fmt"

	"prepmate-backend/internal/models"
)

type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// ValidateQuizQuestions checks a question list independently of where it came
// from (import, generation, or a saved set about to be published). One error
// string is produced per violation.
func ValidateQuizQuestions(questions []models.QuizQuestion) ValidationResult {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question list is empty")
	}

	for i, q := range questions {
		if q.Question == "" {
			errs = append(errs, fmt.Sprintf("question %d: text is empty", i+1))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %d: needs at least 2 options, has %d", i+1, len(q.Options)))
		}
		for j, opt := range q.Options {
			if opt == "" {
				errs = append(errs, fmt.Sprintf("question %d: option %d is empty", i+1, j+1))
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %d: correct index %d is out of range for %d options", i+1, q.CorrectIndex, len(q.Options)))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
