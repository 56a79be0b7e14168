package parse

import (
	"regexp"
	"strings"

	"prepmate-backend/internal/models"
)

var (
	itemBoundaryRe = regexp.MustCompile(`\n\d+\.\s`)
	optionLineRe   = regexp.MustCompile(`^([A-D])\)\s*(.+)$`)
	answerLineRe   = regexp.MustCompile(`(?i)answer:\s*([A-D])`)
)

// ParseQuizResponse turns a numbered-list quiz response into structured
// questions. The expected item layout is the one requested by
// BuildQuestionPrompt:
//
//	1. Question text
//	A) option
//	B) option
//	C) option
//	D) option
//	Answer: B
//
// Options are collected in encounter order; fewer than four matching option
// lines is accepted. The answer letter is converted to a zero-based index at
// this boundary; items whose letter is missing or points past the collected
// options are dropped with a warning rather than given a guessed index.
func ParseQuizResponse(raw string) Outcome[models.QuizQuestion] {
	var out Outcome[models.QuizQuestion]

	// Leading "\n" so an item starting at offset zero still splits.
	fragments := itemBoundaryRe.Split("\n"+raw, -1)

	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}

		lines := strings.Split(frag, "\n")
		question := ""
		var options []string
		answerLetter := ""

		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if question == "" {
				question = line
				continue
			}
			if m := optionLineRe.FindStringSubmatch(line); m != nil {
				options = append(options, strings.TrimSpace(m[2]))
				continue
			}
			if m := answerLineRe.FindStringSubmatch(line); m != nil {
				answerLetter = strings.ToUpper(m[1])
			}
		}

		if question == "" || len(options) == 0 {
			out.warnf("skipped fragment with no parsable question/options: %q", truncate(frag, 60))
			continue
		}

		idx := letterToIndex(answerLetter)
		if idx < 0 || idx >= len(options) {
			out.warnf("skipped question %q: answer %q does not match any of %d options", truncate(question, 60), answerLetter, len(options))
			continue
		}

		out.Questions = append(out.Questions, models.QuizQuestion{
			Question:     question,
			Options:      options,
			CorrectIndex: idx,
		})
	}

	return out
}

// letterToIndex maps "A".."D" to 0..3, -1 otherwise.
func letterToIndex(letter string) int {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'D' {
		return -1
	}
	return int(letter[0] - 'A')
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
