package services

import (
	"strings"
	"testing"

	"prepmate-backend/internal/models"
	"prepmate-backend/internal/parse"
)

func TestBuildQuestionPrompt_Quiz(t *testing.T) {
	p := BuildQuestionPrompt(models.QuestionTypeQuiz, "Frontend Development", 7)

	for _, want := range []string{
		"exactly 7 multiple-choice",
		"Frontend Development",
		"A) <option 1>",
		"Answer: <A|B|C|D>",
		"No preamble",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("Quiz prompt missing %q", want)
		}
	}
}

func TestBuildQuestionPrompt_Descriptive(t *testing.T) {
	p := BuildQuestionPrompt(models.QuestionTypeDescriptive, "Databases", 3)

	if !strings.Contains(p, "exactly 3 open-ended") {
		t.Errorf("Descriptive prompt missing count: %q", p)
	}
	if !strings.Contains(p, "Hint: <one short hint>") {
		t.Error("Descriptive prompt missing hint layout")
	}
}

func TestBuildQuestionPrompt_DefaultCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		p := BuildQuestionPrompt(models.QuestionTypeQuiz, "Go", count)
		if !strings.Contains(p, "exactly 5 ") {
			t.Errorf("count=%d should fall back to 5", count)
		}
	}
}

// A response hand-written to the documented layout must round-trip through
// the parser with nothing lost.
func TestPromptLayoutRoundTrip(t *testing.T) {
	_ = BuildQuestionPrompt(models.QuestionTypeQuiz, "Backend Development", 5)

	response := `1. What does a goroutine run on?
A) An OS thread pool managed by the runtime
B) A dedicated kernel thread
C) A browser worker
D) A virtual machine
Answer: A

2. Which statement about channels is true?
A) They are unbuffered only
B) They can be buffered or unbuffered
C) They require locks
D) They copy goroutines
Answer: B

3. What does defer do?
A) Runs a call at function return
B) Deletes a variable
C) Starts a goroutine
D) Blocks forever
Answer: A

4. Which is a valid map declaration?
A) map[string]int{}
B) map{string:int}
C) dict[string]int
D) hash<string,int>
Answer: A

5. What closes a channel?
A) close(ch)
B) ch.close()
C) delete(ch)
D) free(ch)
Answer: A`

	out := parse.ParseQuizResponse(response)

	if len(out.Questions) != 5 {
		t.Fatalf("Expected 5 questions, got %d (warnings: %v)", len(out.Questions), out.Warnings)
	}
	for i, q := range out.Questions {
		if q.Question == "" {
			t.Errorf("Question %d has empty text", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("Question %d: expected 4 options, got %d", i, len(q.Options))
		}
	}
}
