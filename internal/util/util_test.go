package util

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("UNIX_VAR", "unix_value")
	t.Setenv("WIN_VAR", "win_value")
	t.Setenv("MIXED_VAR", "mixed_value")
	os.Unsetenv("UNDEFINED_VAR")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No Vars", "Just a string", "Just a string"},
		{"Unix Var Simple", "Hello $UNIX_VAR", "Hello unix_value"},
		{"Unix Var Brace", "Input: ${UNIX_VAR}!", "Input: unix_value!"},
		{"Windows Var", "Got %WIN_VAR%", "Got win_value"},
		{"Mixed Vars", "$UNIX_VAR-%WIN_VAR%-${MIXED_VAR}", "unix_value-win_value-mixed_value"},
		{"Undefined Unix Var", "Val: $UNDEFINED_VAR", "Val: "},
		{"Undefined Windows Var", "Val: %UNDEFINED_VAR%", "Val: "},
		{"Adjacent Vars", "$UNIX_VAR%WIN_VAR%", "unix_valuewin_value"},
		{"Empty Input", "", ""},
		{"Only Delimiters", "$ %", "$ %"},
		{"Percent Sign Not Var", "A 50% sign", "A 50% sign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandEnv(tt.input))
		})
	}
}

func TestSnippet(t *testing.T) {
	longInput := strings.Repeat("a", 300)
	longExpected := strings.Repeat("a", 200) + "..."

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Short", "short body", "short body"},
		{"Exactly 200", strings.Repeat("b", 200), strings.Repeat("b", 200)},
		{"Truncated", longInput, longExpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snippet([]byte(tt.input)))
		})
	}
}

func TestLooksLikeJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Object", `{"a": 1}`, true},
		{"Array", `[1, 2]`, true},
		{"Padded Object", "  {\"a\": 1}\n", true},
		{"XML", `<Response/>`, false},
		{"Properties", "AWSAccessKeyId=AKID", false},
		{"Empty", "", false},
		{"Open Brace Only", "{unterminated", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeJSON(tt.input))
		})
	}
}
