package evaluation

import (
	"encoding/json"
	"math"
	"strings"
)

// Result is the normalized evaluation. A nil field means the payload carried
// nothing usable for it.
type Result struct {
	Score    *float64 `json:"score"`
	Feedback *string  `json:"feedback"`
}

// Extract pulls a numeric score and a feedback string out of an evaluation
// payload. Models wrap the real JSON in markdown fences or prose often enough
// that a plain unmarshal is not sufficient, so extraction is staged:
//
//  1. take direct score/feedback fields from the payload itself, each
//     independently, so one field of the wrong type does not discard the
//     other
//  2. strip code fences from the feedback string; if what remains is (or
//     contains) a JSON object, re-extract score/feedback from that object,
//     keeping the prior values on any parse failure
//
// Extract never fails; a hopeless payload yields a Result with nil fields.
func Extract(raw json.RawMessage) Result {
	var res Result

	score, feedback, ok := decodeFields(raw)
	if !ok {
		return res
	}

	if score != nil && !math.IsNaN(*score) && !math.IsInf(*score, 0) {
		res.Score = score
	}
	if feedback == nil {
		return res
	}

	cleaned := stripFences(strings.TrimSpace(*feedback))
	res.Feedback = &cleaned

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		// Whole text is an object. A failed parse keeps the pre-parse values.
		res.applyEmbedded(cleaned)
		return res
	}

	// Prose-wrapped object: greedy span from first "{" to last "}". A failed
	// parse falls back to the cleaned text as the feedback, which is already
	// in place.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		res.applyEmbedded(cleaned[start : end+1])
	}

	return res
}

// applyEmbedded parses span as a JSON object and overwrites score/feedback
// from its fields when they carry the expected types. A span that is not an
// object leaves the receiver untouched.
func (r *Result) applyEmbedded(span string) {
	score, feedback, ok := decodeFields([]byte(span))
	if !ok {
		return
	}
	if score != nil {
		r.Score = score
	}
	if feedback != nil {
		r.Feedback = feedback
	}
}

// decodeFields reads score and feedback out of a JSON object field by field.
// A mistyped field comes back nil without poisoning the other; ok is false
// only when raw is not an object at all.
func decodeFields(raw []byte) (score *float64, feedback *string, ok bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, nil, false
	}
	if v, present := obj["score"]; present {
		json.Unmarshal(v, &score)
	}
	if v, present := obj["feedback"]; present {
		json.Unmarshal(v, &feedback)
	}
	return score, feedback, true
}

// stripFences removes a leading ``` (with optional language tag) and trailing
// ``` pair, plus the ''' variant some models emit instead.
func stripFences(s string) string {
	for _, fence := range []string{"```", "'''"} {
		if !strings.HasPrefix(s, fence) {
			continue
		}
		body := s[len(fence):]
		// Optional language tag up to the first newline.
		if nl := strings.Index(body, "\n"); nl >= 0 && !strings.ContainsAny(body[:nl], "{}") {
			body = body[nl+1:]
		}
		body = strings.TrimSpace(body)
		body = strings.TrimSuffix(body, fence)
		return strings.TrimSpace(body)
	}
	return s
}
