package services

import (
	"fmt"
	"strings"

	"prepmate-backend/internal/models"
)

const defaultQuestionCount = 5

// BuildQuestionPrompt renders the generation instruction for one question
// type and domain. The layout it demands is exactly what the parsers in
// internal/parse expect back, so the two must stay in sync. Pure function of
// its inputs.
func BuildQuestionPrompt(questionType, domainName string, count int) string {
	if count <= 0 {
		count = defaultQuestionCount
	}

	var b strings.Builder

	b.WriteString("You are an experienced technical interviewer.\n\n")

	switch questionType {
	case models.QuestionTypeQuiz:
		fmt.Fprintf(&b, "Generate exactly %d multiple-choice interview questions about %s.\n\n", count, domainName)
		b.WriteString("Use exactly this layout for every question, numbered sequentially and separated by a blank line:\n\n")
		b.WriteString("1. <question text>\n")
		b.WriteString("A) <option 1>\n")
		b.WriteString("B) <option 2>\n")
		b.WriteString("C) <option 3>\n")
		b.WriteString("D) <option 4>\n")
		b.WriteString("Answer: <A|B|C|D>\n\n")
	default:
		fmt.Fprintf(&b, "Generate exactly %d open-ended interview questions about %s.\n\n", count, domainName)
		b.WriteString("Use exactly this layout for every question, numbered sequentially:\n\n")
		b.WriteString("1. <question text>\n")
		b.WriteString("Hint: <one short hint>\n\n")
	}

	b.WriteString("Return only the questions in that layout. No preamble, no commentary, no markdown fences.\n")

	return b.String()
}

// BuildResumePrompt layers extracted resume text under the standard
// instruction so questions target the candidate's actual experience.
func BuildResumePrompt(questionType, domainName string, count int, resumeText string) string {
	var b strings.Builder

	b.WriteString(BuildQuestionPrompt(questionType, domainName, count))
	b.WriteString("\nGround every question in the candidate's resume below. Prefer their stated projects and technologies.\n")
	b.WriteString("\n---RESUME START---\n")
	b.WriteString(resumeText)
	b.WriteString("\n---RESUME END---\n")

	return b.String()
}

// BuildModelAnswerPrompt asks for a reference answer used as the comparison
// baseline when scoring a spoken response.
func BuildModelAnswerPrompt(question string) string {
	var b strings.Builder

	b.WriteString("You are an experienced technical interviewer. Write a model answer to the interview question below.\n")
	b.WriteString("Keep it under 150 words, plain text, no markdown.\n\n")
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n")

	return b.String()
}

// BuildEvaluationPrompt asks for a structured comparison of the candidate's
// answer against the model answer.
func BuildEvaluationPrompt(userAnswer, modelAnswer string) string {
	var b strings.Builder

	b.WriteString("You are an interview evaluator. Compare the candidate's answer with the model answer.\n")
	b.WriteString("Return ONLY a JSON object of the form {\"score\": <0-10 number>, \"feedback\": \"<2-3 sentences>\"}. No markdown, no backticks.\n\n")
	b.WriteString("---MODEL ANSWER---\n")
	b.WriteString(modelAnswer)
	b.WriteString("\n---CANDIDATE ANSWER---\n")
	b.WriteString(userAnswer)
	b.WriteString("\n---END---\n")

	return b.String()
}
