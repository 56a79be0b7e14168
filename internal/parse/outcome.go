package parse

import "fmt"

// Outcome collects what a parser could recover from free-form model output.
// Errors are per-item failures; Warnings cover fragments that were dropped
// without aborting the parse. Parsers never return an error value: the worst
// case is an Outcome with no questions.
type Outcome[T any] struct {
	Questions []T      `json:"questions"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (o *Outcome[T]) warnf(format string, args ...interface{}) {
	o.Warnings = append(o.Warnings, fmt.Sprintf(format, args...))
}
