package importer

import (
	"strings"
	"testing"

	"prepmate-backend/internal/models"
)

func TestValidateQuizQuestions(t *testing.T) {
	good := models.QuizQuestion{
		Question:     "Fine question?",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: 2,
	}

	tests := []struct {
		name       string
		questions  []models.QuizQuestion
		wantValid  bool
		wantErrors int
		wantSubstr string
	}{
		{"empty list", nil, false, 1, "empty"},
		{"all good", []models.QuizQuestion{good, good}, true, 0, ""},
		{
			"single option",
			[]models.QuizQuestion{{Question: "Q?", Options: []string{"only"}, CorrectIndex: 0}},
			false, 1, "question 1",
		},
		{
			"empty question text",
			[]models.QuizQuestion{{Options: []string{"a", "b"}, CorrectIndex: 0}},
			false, 1, "text is empty",
		},
		{
			"empty option",
			[]models.QuizQuestion{{Question: "Q?", Options: []string{"a", ""}, CorrectIndex: 0}},
			false, 1, "option 2 is empty",
		},
		{
			"index out of range",
			[]models.QuizQuestion{{Question: "Q?", Options: []string{"a", "b"}, CorrectIndex: 2}},
			false, 1, "out of range",
		},
		{
			"negative index",
			[]models.QuizQuestion{{Question: "Q?", Options: []string{"a", "b"}, CorrectIndex: -1}},
			false, 1, "out of range",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateQuizQuestions(tc.questions)
			if res.IsValid != tc.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", res.IsValid, tc.wantValid, res.Errors)
			}
			if len(res.Errors) != tc.wantErrors {
				t.Errorf("Expected %d errors, got %v", tc.wantErrors, res.Errors)
			}
			if tc.wantSubstr != "" && (len(res.Errors) == 0 || !strings.Contains(res.Errors[0], tc.wantSubstr)) {
				t.Errorf("Expected error containing %q, got %v", tc.wantSubstr, res.Errors)
			}
		})
	}
}
