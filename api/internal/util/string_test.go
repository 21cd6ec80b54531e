package util

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"[TITLE]Mars[/TITLE]", "[TITLE]Mars[/TITLE]"},
		{"```\n[TITLE]Mars[/TITLE]\n```", "[TITLE]Mars[/TITLE]"},
		{"```text\n[TITLE]Mars[/TITLE]\n```", "[TITLE]Mars[/TITLE]"},
		{"  \n```json\n{}\n```\n", "{}"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripCodeFences(c.in); got != c.want {
			t.Fatalf("StripCodeFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
