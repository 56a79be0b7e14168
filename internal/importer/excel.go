package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"prepmate-backend/internal/models"
)

// Expected sheet layout, one question per row:
//
//	Question | Option 1 | Option 2 | Option 3 | Option 4 | Correct Answer
//
// Options may stop early (two or three filled cells) and Correct Answer is a
// 1-based ordinal into the filled options.
const (
	colQuestion    = 0
	colFirstOption = 1
	colLastOption  = 4
	colAnswer      = 5
)

// ImportResult aggregates recovered questions with row-scoped diagnostics.
// Success is true only when no errors were recorded.
type ImportResult struct {
	Questions []models.QuizQuestion `json:"questions"`
	Errors    []string              `json:"errors,omitempty"`
	Warnings  []string              `json:"warnings,omitempty"`
	Success   bool                  `json:"success"`
}

// ImportQuiz reads an .xlsx workbook and maps its first sheet to quiz
// questions. Row-level problems are collected and the row skipped; processing
// continues. A workbook that cannot be opened at all yields a single
// top-level error.
func ImportQuiz(r io.Reader) *ImportResult {
	res := &ImportResult{}

	f, err := excelize.OpenReader(r)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("failed to read spreadsheet: %v", err))
		return res
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		res.Errors = append(res.Errors, "spreadsheet has no sheets")
		return res
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err))
		return res
	}

	start := 0
	if len(rows) > 0 && hasHeader(rows[0]) {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		rowNum := i + 1 // 1-based, as shown in spreadsheet apps
		q, errMsg := parseRow(rows[i], rowNum)
		if errMsg != "" {
			res.Errors = append(res.Errors, errMsg)
			continue
		}
		if q == nil {
			// Blank/padding row, skipped silently.
			continue
		}
		res.Questions = append(res.Questions, *q)
	}

	if len(res.Questions) == 0 && len(res.Errors) == 0 {
		res.Errors = append(res.Errors, "no valid questions found")
	}

	res.Success = len(res.Errors) == 0
	return res
}

// hasHeader applies the template heuristic: a first cell mentioning
// "question" marks row 1 as a header. A legitimate question starting with
// that word would misfire here, which is documented template behavior.
func hasHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(row[0]), "question")
}

// parseRow maps one sheet row to a question. Returns (nil, "") for blank
// rows, (nil, msg) for rows that fail validation.
func parseRow(row []string, rowNum int) (*models.QuizQuestion, string) {
	question := strings.TrimSpace(cell(row, colQuestion))
	if question == "" {
		return nil, ""
	}

	var options []string
	for c := colFirstOption; c <= colLastOption; c++ {
		options = append(options, strings.TrimSpace(cell(row, c)))
	}
	// Drop trailing empty option cells; a row may carry 2-4 options.
	for len(options) > 0 && options[len(options)-1] == "" {
		options = options[:len(options)-1]
	}

	// Option count first, so a sparse row is reported as such rather than
	// as an answer out of an impossible range.
	if len(options) < 2 {
		return nil, fmt.Sprintf("row %d: needs at least 2 options, found %d", rowNum, len(options))
	}

	answerText := strings.TrimSpace(cell(row, colAnswer))
	ordinal, err := strconv.Atoi(answerText)
	if err != nil || ordinal < 1 || ordinal > len(options) {
		return nil, fmt.Sprintf("row %d: correct answer %q is not a number between 1 and %d", rowNum, answerText, len(options))
	}

	return &models.QuizQuestion{
		Question:     question,
		Options:      options,
		CorrectIndex: ordinal - 1,
	}, ""
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
