package analysis

import "strings"

// ExtractJSON isolates the JSON object candidate from free model text.
// Priority: fenced ```json block, then the first balanced {...} span,
// then the raw text as-is. Stray fence markers are stripped either way.
func ExtractJSON(raw string) string {
	if inner, ok := fencedBlock(raw); ok {
		return stripFences(inner)
	}
	if span, ok := braceSpan(raw); ok {
		return stripFences(span)
	}
	return stripFences(strings.TrimSpace(raw))
}

// fencedBlock returns the inner content of the first ```json fenced block.
func fencedBlock(raw string) (string, bool) {
	const marker = "```json"
	start := strings.Index(raw, marker)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(marker):]
	end := strings.Index(rest, "```")
	if end < 0 {
		// unterminated fence: take everything after the marker
		return strings.TrimSpace(rest), true
	}
	return strings.TrimSpace(rest[:end]), true
}

// braceSpan scans from the first '{' to its balanced closing '}', aware of
// string literals and escapes, so prose braces after the object are ignored.
func braceSpan(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	// unbalanced: hand the tail to the parser and let it report the error
	return raw[start:], true
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
