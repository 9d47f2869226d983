package utils

import "strings"

// ContainsAny reports whether s contains at least one of the given
// substrings. Matching is case-sensitive; callers lower-case s first when
// they need case-insensitive matching.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TruncateForLog shortens s to at most n runes for log output.
func TruncateForLog(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
