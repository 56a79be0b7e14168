package parse

import (
	"regexp"
	"strings"

	"prepmate-backend/internal/models"
)

var numberedLineRe = regexp.MustCompile(`^\d+\.\s*`)

// ParseDescriptiveResponse parses numbered open-ended questions, each
// optionally followed by a "Hint:" line:
//
//	1. Question text
//	Hint: a nudge in the right direction
//
// A hint line that appears before any numbered question has nothing to attach
// to and is dropped with a warning. The final in-progress question is flushed
// when the input ends.
func ParseDescriptiveResponse(raw string) Outcome[models.DescriptiveQuestion] {
	var out Outcome[models.DescriptiveQuestion]

	var current *models.DescriptiveQuestion

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if numberedLineRe.MatchString(line) {
			if current != nil {
				out.Questions = append(out.Questions, *current)
			}
			current = &models.DescriptiveQuestion{
				Question: strings.TrimSpace(numberedLineRe.ReplaceAllString(line, "")),
			}
			continue
		}

		if strings.HasPrefix(line, "Hint:") {
			if current == nil {
				out.warnf("dropped hint with no preceding question: %q", truncate(line, 60))
				continue
			}
			current.Hint = strings.TrimSpace(strings.TrimPrefix(line, "Hint:"))
		}
	}

	if current != nil {
		out.Questions = append(out.Questions, *current)
	}

	return out
}
