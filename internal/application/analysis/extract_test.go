package analysis

import "testing"

func TestExtractJSONFencedBlock(t *testing.T) {
	raw := "Here is the audit you asked for:\n```json\n{\"summary\": \"ok\"}\n```\nLet me know if you need more."
	got := ExtractJSON(raw)
	want := `{"summary": "ok"}`
	if got != want {
		t.Fatalf("ExtractJSON(fenced) = %q, want %q", got, want)
	}
}

func TestExtractJSONFencedBlockWinsOverProse(t *testing.T) {
	// A fenced block takes priority even when braces appear earlier in prose.
	raw := "Note {this is prose}.\n```json\n{\"trustworthinessScore\": 80}\n```"
	got := ExtractJSON(raw)
	want := `{"trustworthinessScore": 80}`
	if got != want {
		t.Fatalf("ExtractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONUnterminatedFence(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\"}"
	if got := ExtractJSON(raw); got != `{"summary": "ok"}` {
		t.Fatalf("ExtractJSON(unterminated fence) = %q", got)
	}
}

func TestExtractJSONBraceSpanInsideProse(t *testing.T) {
	raw := `Sure! The analysis result is {"summary": "fair deal", "trustworthinessScore": 85} hope that helps.`
	got := ExtractJSON(raw)
	want := `{"summary": "fair deal", "trustworthinessScore": 85}`
	if got != want {
		t.Fatalf("ExtractJSON(prose) = %q, want %q", got, want)
	}
}

func TestExtractJSONIgnoresTrailingProseBrace(t *testing.T) {
	// A stray } after the object must not extend the candidate.
	raw := `{"a": {"b": 1}} and later a lone } appears`
	got := ExtractJSON(raw)
	want := `{"a": {"b": 1}}`
	if got != want {
		t.Fatalf("ExtractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	raw := `prefix {"summary": "watch for {hidden} fees", "quote": "a \" and a }"} suffix`
	got := ExtractJSON(raw)
	want := `{"summary": "watch for {hidden} fees", "quote": "a \" and a }"}`
	if got != want {
		t.Fatalf("ExtractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONFallbackRawText(t *testing.T) {
	raw := "  null  "
	if got := ExtractJSON(raw); got != "null" {
		t.Fatalf("ExtractJSON(no braces) = %q, want %q", got, "null")
	}
}

func TestExtractJSONUnbalancedTail(t *testing.T) {
	// Unbalanced objects are passed through so the parser reports the failure.
	raw := `{"summary": "truncated`
	if got := ExtractJSON(raw); got != raw {
		t.Fatalf("ExtractJSON(unbalanced) = %q, want %q", got, raw)
	}
}
