package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain text untouched", "Hello World", "Hello World"},
		{"Trims whitespace", "  Hello World  ", "Hello World"},
		{"Strips script tag", "<script>alert(1)</script>Hello", "alert(1)Hello"},
		{"Strips nested markup", "<div><b>bold</b></div>text", "boldtext"},
		{"Bracketed run removed as a tag", "1 < 2 > 0", "1  0"},
		{"Trailing loose bracket stripped", "a > b", "a  b"},
		{"Strips quotes", `say "hi" and 'bye'`, "say hi and bye"},
		{"Unclosed tag loses bracket", "<script", "script"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Unicode preserved", "café naïve 日本語", "café naïve 日本語"},
		{"SQL-like text kept", "SELECT * FROM users; DROP TABLE users", "SELECT * FROM users; DROP TABLE users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanNeverLeavesForbiddenChars(t *testing.T) {
	inputs := []string{
		"<<<>>>",
		`<a href="x">link</a>`,
		"<<script>script>alert(1)<</script>/script>",
		`"''"<>`,
		"normal text",
		"",
		"日本語<タグ>テキスト",
	}

	for _, input := range inputs {
		got := Clean(input)
		if strings.ContainsAny(got, `<>'"`) {
			t.Errorf("Clean(%q) = %q, still contains forbidden characters", input, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Clean(%q) = %q, not trimmed", input, got)
		}
	}
}
