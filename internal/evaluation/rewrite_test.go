package evaluation

import "testing"

func TestRewriteSecondPerson(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"third person to second",
			"The user did well but the user should slow down.",
			"you did well but you should slow down.",
		},
		{
			"possessives",
			"User's answer shows their understanding of the topic.",
			"your answer shows your understanding of the topic.",
		},
		{
			"they and them",
			"they explained it well and it served them nicely",
			"you explained it well and it served you nicely",
		},
		{
			"trailing angle brackets stripped",
			"Solid reasoning overall >>>",
			"Solid reasoning overall",
		},
		{
			"whitespace collapsed",
			"Good   answer \n with  odd   spacing",
			"Good answer with odd spacing",
		},
		{
			"word boundaries respected",
			"theyre theirs users",
			"theyre theirs users",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RewriteSecondPerson(tc.in); got != tc.want {
				t.Errorf("RewriteSecondPerson(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRewriteSecondPerson_AfterExtraction(t *testing.T) {
	feedback := "The user did well"
	if got := RewriteSecondPerson(feedback); got != "you did well" {
		t.Errorf("Expected %q, got %q", "you did well", got)
	}
}
