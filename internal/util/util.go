package util

import (
	"os"
	"regexp"
	"strings"
)

var windowsVarPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// ExpandEnv expands both Unix-style ($VAR, ${VAR}) and Windows-style (%VAR%)
// environment variable references in s. Unresolved references expand to the
// empty string.
func ExpandEnv(s string) string {
	expanded := os.ExpandEnv(s)
	return windowsVarPattern.ReplaceAllStringFunc(expanded, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return ""
	})
}

// Snippet returns a short prefix of b, useful for debug logging of response
// bodies without flooding stderr.
func Snippet(b []byte) string {
	const maxLen = 200
	runes := []rune(string(b))
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return string(b)
}

// LooksLikeJSON reports whether s starts and ends with characters typical of
// a JSON object or array. A heuristic, not a validation.
func LooksLikeJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	return (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
}
