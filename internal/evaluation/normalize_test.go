package evaluation

import (
	"encoding/json"
	"testing"
)

func TestExtract_DirectFields(t *testing.T) {
	raw := json.RawMessage(`{"score": 8, "feedback": "Good job overall."}`)

	res := Extract(raw)

	if res.Score == nil || *res.Score != 8 {
		t.Errorf("Expected score 8, got %v", res.Score)
	}
	if res.Feedback == nil || *res.Feedback != "Good job overall." {
		t.Errorf("Expected feedback unchanged, got %v", res.Feedback)
	}
}

func TestExtract_FencedJSONFeedback(t *testing.T) {
	raw := json.RawMessage("{\"feedback\": \"```json\\n{\\\"score\\\":7,\\\"feedback\\\":\\\"The user did well\\\"}\\n```\"}")

	res := Extract(raw)

	if res.Score == nil || *res.Score != 7 {
		t.Fatalf("Expected score 7 from embedded JSON, got %v", res.Score)
	}
	if res.Feedback == nil || *res.Feedback != "The user did well" {
		t.Fatalf("Expected embedded feedback, got %v", res.Feedback)
	}
}

func TestExtract_SingleQuoteFence(t *testing.T) {
	raw := json.RawMessage(`{"feedback": "'''\n{\"score\":5,\"feedback\":\"Average attempt\"}\n'''"}`)

	res := Extract(raw)

	if res.Score == nil || *res.Score != 5 {
		t.Errorf("Expected score 5, got %v", res.Score)
	}
	if res.Feedback == nil || *res.Feedback != "Average attempt" {
		t.Errorf("Expected feedback from fenced object, got %v", res.Feedback)
	}
}

func TestExtract_ProseWrappedJSON(t *testing.T) {
	raw := json.RawMessage(`{"feedback": "Here is my assessment: {\"score\": 6, \"feedback\": \"Needs depth\"} hope that helps"}`)

	res := Extract(raw)

	if res.Score == nil || *res.Score != 6 {
		t.Errorf("Expected score 6 from prose-wrapped object, got %v", res.Score)
	}
	if res.Feedback == nil || *res.Feedback != "Needs depth" {
		t.Errorf("Expected feedback from prose-wrapped object, got %v", res.Feedback)
	}
}

func TestExtract_UnparsableBracesFallBackToText(t *testing.T) {
	raw := json.RawMessage(`{"feedback": "Scores look like {not json} honestly"}`)

	res := Extract(raw)

	if res.Score != nil {
		t.Errorf("Expected nil score, got %v", *res.Score)
	}
	if res.Feedback == nil || *res.Feedback != "Scores look like {not json} honestly" {
		t.Errorf("Expected cleaned text as feedback, got %v", res.Feedback)
	}
}

func TestExtract_MixedValidityFields(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantScore    *float64
		wantFeedback *string
	}{
		{
			"score valid, feedback is an object",
			`{"score": 7, "feedback": {"text": "nested by the model"}}`,
			ptrFloat(7), nil,
		},
		{
			"score is a string, feedback valid",
			`{"score": "high", "feedback": "Solid answer"}`,
			nil, ptrString("Solid answer"),
		},
		{
			"embedded object with mistyped score",
			`{"feedback": "{\"score\": \"9\", \"feedback\": \"Keep going\"}"}`,
			nil, ptrString("Keep going"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Extract(json.RawMessage(tc.raw))

			switch {
			case tc.wantScore == nil && res.Score != nil:
				t.Errorf("Expected nil score, got %v", *res.Score)
			case tc.wantScore != nil && (res.Score == nil || *res.Score != *tc.wantScore):
				t.Errorf("Expected score %v, got %v", *tc.wantScore, res.Score)
			}

			switch {
			case tc.wantFeedback == nil && res.Feedback != nil:
				t.Errorf("Expected nil feedback, got %q", *res.Feedback)
			case tc.wantFeedback != nil && (res.Feedback == nil || *res.Feedback != *tc.wantFeedback):
				t.Errorf("Expected feedback %q, got %v", *tc.wantFeedback, res.Feedback)
			}
		})
	}
}

func ptrFloat(f float64) *float64 { return &f }
func ptrString(s string) *string  { return &s }

func TestExtract_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "plainly broken"},
		{"null", "null"},
		{"empty object", "{}"},
		{"wrong types", `{"score": "seven", "feedback": 12}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Extract(json.RawMessage(tc.raw))
			if res.Score != nil {
				t.Errorf("Expected nil score, got %v", *res.Score)
			}
			if res.Feedback != nil {
				t.Errorf("Expected nil feedback, got %q", *res.Feedback)
			}
		})
	}
}
