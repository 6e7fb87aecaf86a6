package gemini

import "strings"

// stripJSONFences unwraps the strict-JSON reply a model sometimes wraps
// in Markdown code fences or leading prose. The result is still
// untrusted input; callers must validate shape after parsing.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		return strings.TrimSpace(s)
	}

	// Tolerate prose before the payload: cut to the first brace.
	if i := strings.IndexAny(s, "[{"); i > 0 {
		s = s[i:]
	}

	return strings.TrimSpace(s)
}
