package parse

import (
	"fmt"
	"strings"
	"testing"
)

func sampleQuizText(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d. What does question %d ask?\n", i, i)
		b.WriteString("A) First option\n")
		b.WriteString("B) Second option\n")
		b.WriteString("C) Third option\n")
		b.WriteString("D) Fourth option\n")
		b.WriteString("Answer: B\n\n")
	}
	return b.String()
}

func TestParseQuizResponse_WellFormed(t *testing.T) {
	out := ParseQuizResponse(sampleQuizText(5))

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
		if q.CorrectIndex != 1 {
			t.Errorf("Question %d: expected correct index 1 (B), got %d", i, q.CorrectIndex)
		}
	}
	if out.Questions[0].Options[0] != "First option" {
		t.Errorf("Expected options in encounter order, got %v", out.Questions[0].Options)
	}
}

func TestParseQuizResponse_ThreeOptionsAccepted(t *testing.T) {
	raw := "1. Short question?\nA) one\nB) two\nC) three\nAnswer: C\n"

	out := ParseQuizResponse(raw)

	if len(out.Questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(out.Questions))
	}
	if len(out.Questions[0].Options) != 3 {
		t.Errorf("Expected 3 options, got %d", len(out.Questions[0].Options))
	}
	if out.Questions[0].CorrectIndex != 2 {
		t.Errorf("Expected correct index 2, got %d", out.Questions[0].CorrectIndex)
	}
}

func TestParseQuizResponse_Malformed(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantQuestions int
		wantWarnings  int
	}{
		{"empty input", "", 0, 0},
		{"no numbering at all", "Just some prose the model emitted instead.", 0, 1},
		{"answer letter out of range", "1. Q?\nA) one\nB) two\nAnswer: D\n", 0, 1},
		{"missing answer line", "1. Q?\nA) one\nB) two\n", 0, 1},
		{"one good one bad", "1. Q?\nA) one\nB) two\nAnswer: A\n\n2. Orphan without options\n", 1, 1},
		{"lowercase answer keyword", "1. Q?\nA) one\nB) two\nanswer: b\n", 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := ParseQuizResponse(tc.raw)
			if len(out.Questions) != tc.wantQuestions {
				t.Errorf("Expected %d questions, got %d", tc.wantQuestions, len(out.Questions))
			}
			if len(out.Warnings) != tc.wantWarnings {
				t.Errorf("Expected %d warnings, got %d (%v)", tc.wantWarnings, len(out.Warnings), out.Warnings)
			}
		})
	}
}

func TestLetterToIndex(t *testing.T) {
	tests := []struct {
		letter string
		want   int
	}{
		{"A", 0}, {"B", 1}, {"C", 2}, {"D", 3},
		{"E", -1}, {"", -1}, {"AB", -1},
	}
	for _, tc := range tests {
		if got := letterToIndex(tc.letter); got != tc.want {
			t.Errorf("letterToIndex(%q) = %d, want %d", tc.letter, got, tc.want)
		}
	}
}
