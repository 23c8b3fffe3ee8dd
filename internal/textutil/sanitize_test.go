package textutil

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"tab preserved", "a\tb", "a\tb"},
		{"escape replaced", "a\x1b[31mred", "a [31mred"},
		{"bell replaced", "ding\adong", "ding dong"},
		{"del replaced", "a\x7fb", "a b"},
		{"c1 control replaced", "ab", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q)=%q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeKeepsRuneCount(t *testing.T) {
	in := "a\x1bbc"
	got := Sanitize(in)
	inRunes := []rune(in)
	gotRunes := []rune(got)
	if len(gotRunes) != len(inRunes) {
		t.Fatalf("rune count changed: %d want %d", len(gotRunes), len(inRunes))
	}
}
