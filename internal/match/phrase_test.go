package match

import "testing"

func TestCompilePhraseBlank(t *testing.T) {
	for _, phrase := range []string{"", "   ", "\t \n"} {
		if re := CompilePhrase(phrase); re != nil {
			t.Fatalf("CompilePhrase(%q) = %v, want nil", phrase, re)
		}
	}
}

func TestCompilePhraseEscapesMetacharacters(t *testing.T) {
	re := CompilePhrase("a.b")
	if re == nil {
		t.Fatalf("nil pattern")
	}
	if !re.MatchString("a.b") {
		t.Fatalf("literal a.b did not match")
	}
	if re.MatchString("axb") {
		t.Fatalf("dot matched as wildcard")
	}
}

func TestCompilePhraseCaseInsensitive(t *testing.T) {
	re := CompilePhrase("Hello")
	for _, text := range []string{"hello", "HELLO", "hElLo"} {
		if !re.MatchString(text) {
			t.Fatalf("%q did not match", text)
		}
	}
}

func TestCompilePhraseWhitespaceTolerant(t *testing.T) {
	re := CompilePhrase("hello world")

	tests := []struct {
		text string
		want bool
	}{
		{"hello world", true},
		{"hello  world", true}, // extra injected separator
		{"hello\tworld", true},
		{"helloworld", false},
		{"hello planet world", false},
	}
	for _, tt := range tests {
		if got := re.MatchString(tt.text); got != tt.want {
			t.Fatalf("match(%q)=%v want %v", tt.text, got, tt.want)
		}
	}
}

func TestCompilePhraseUnbalancedMetacharacters(t *testing.T) {
	// Must never panic or error, whatever the user typed.
	for _, phrase := range []string{"(", "[a-", "a\\", "**", "?"} {
		re := CompilePhrase(phrase)
		if re == nil {
			t.Fatalf("CompilePhrase(%q) returned nil", phrase)
		}
		if !re.MatchString(phrase) {
			t.Fatalf("phrase %q does not match itself", phrase)
		}
	}
}
