package parse

import "testing"

func TestParseDescriptiveResponse_WellFormed(t *testing.T) {
	raw := `1. Explain the virtual DOM.
Hint: Think about reconciliation.

2. What is a closure?
Hint: Scope that outlives its function.

3. Describe event delegation.
Hint: Bubbling.`

	out := ParseDescriptiveResponse(raw)

	if len(out.Questions) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(out.Questions))
	}
	if out.Questions[0].Question != "Explain the virtual DOM." {
		t.Errorf("Unexpected first question: %q", out.Questions[0].Question)
	}
	if out.Questions[1].Hint != "Scope that outlives its function." {
		t.Errorf("Unexpected second hint: %q", out.Questions[1].Hint)
	}
}

func TestParseDescriptiveResponse_FinalQuestionFlushed(t *testing.T) {
	raw := "1. First?\nHint: one\n2. Last question without trailing newline"

	out := ParseDescriptiveResponse(raw)

	if len(out.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(out.Questions))
	}
	if out.Questions[1].Question != "Last question without trailing newline" {
		t.Errorf("Final question not flushed: %q", out.Questions[1].Question)
	}
	if out.Questions[1].Hint != "" {
		t.Errorf("Expected empty hint, got %q", out.Questions[1].Hint)
	}
}

func TestParseDescriptiveResponse_OrphanHintDropped(t *testing.T) {
	raw := "Hint: I belong to nothing\n1. Real question?\nHint: real hint"

	out := ParseDescriptiveResponse(raw)

	if len(out.Questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(out.Questions))
	}
	if out.Questions[0].Hint != "real hint" {
		t.Errorf("Expected hint %q, got %q", "real hint", out.Questions[0].Hint)
	}
	if len(out.Warnings) != 1 {
		t.Errorf("Expected 1 warning for orphan hint, got %d", len(out.Warnings))
	}
}

func TestParseDescriptiveResponse_CaseSensitiveHintPrefix(t *testing.T) {
	raw := "1. Question?\nhint: lowercase marker is ignored"

	out := ParseDescriptiveResponse(raw)

	if len(out.Questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(out.Questions))
	}
	if out.Questions[0].Hint != "" {
		t.Errorf("Lowercase hint prefix should be ignored, got %q", out.Questions[0].Hint)
	}
}

func TestParseDescriptiveResponse_Empty(t *testing.T) {
	out := ParseDescriptiveResponse("")
	if len(out.Questions) != 0 {
		t.Errorf("Expected no questions, got %d", len(out.Questions))
	}
}
