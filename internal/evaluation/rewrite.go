package evaluation

import (
	"regexp"
	"strings"
)

// rewriteRule is one (pattern, replacement) step. Rules run in order; the
// table is fixed so the rewrite stays auditable.
type rewriteRule struct {
	pattern *regexp.Regexp
	repl    string
}

// Evaluations are phrased about "the user"; the app shows them to that user,
// so feedback is rewritten into second person before display. This is a
// word-boundary substitution pass, not pronoun resolution: "they" referring
// to a third party is rewritten too, which is an accepted limitation.
var rewriteRules = []rewriteRule{
	{regexp.MustCompile(`\s*>+\s*$`), ""},
	{regexp.MustCompile(`\bthe user\b`), "you"},
	{regexp.MustCompile(`\bThe user\b`), "you"},
	{regexp.MustCompile(`(?i)\buser's\b`), "your"},
	{regexp.MustCompile(`\btheir\b`), "your"},
	{regexp.MustCompile(`\bthey\b`), "you"},
	{regexp.MustCompile(`\bthem\b`), "you"},
}

var spaceRunRe = regexp.MustCompile(`\s+`)

// RewriteSecondPerson applies the rule table to a feedback string and
// collapses whitespace. Used by the mock-interview analysis flow only; the
// raw evaluate endpoint returns feedback untouched.
func RewriteSecondPerson(s string) string {
	for _, r := range rewriteRules {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
