package ai

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/openai/openai-go/v2"
)

func completionFromJSON(t *testing.T, payload string) *openai.ChatCompletion {
	t.Helper()
	var resp openai.ChatCompletion
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("failed to unmarshal fixture: %v", err)
	}
	return &resp
}

func TestUsageFrom_StandardFieldNames(t *testing.T) {
	resp := completionFromJSON(t, `{"usage":{"prompt_tokens":120,"completion_tokens":45}}`)

	u := usageFrom(resp)
	if u.InputTokens != 120 || u.OutputTokens != 45 {
		t.Errorf("got %+v, want input 120, output 45", u)
	}
}

func TestUsageFrom_AlternateFieldNames(t *testing.T) {
	resp := completionFromJSON(t, `{"usage":{"input_tokens":7,"output_tokens":3}}`)

	u := usageFrom(resp)
	if u.InputTokens != 7 || u.OutputTokens != 3 {
		t.Errorf("got %+v, want input 7, output 3", u)
	}
}

func TestUsageFrom_MissingUsageContributesZero(t *testing.T) {
	if u := usageFrom(completionFromJSON(t, `{}`)); u.InputTokens != 0 || u.OutputTokens != 0 {
		t.Errorf("missing usage should count as zero, got %+v", u)
	}
	if u := usageFrom(nil); u.InputTokens != 0 || u.OutputTokens != 0 {
		t.Errorf("nil response should count as zero, got %+v", u)
	}
}

func TestSanitizeInput_CollapsesWhitespace(t *testing.T) {
	got := sanitizeInput("první\r\nřádek\t\tdruhý", 100)
	if got != "první řádek druhý" {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeInput_TruncatesAtSentenceBoundary(t *testing.T) {
	in := strings.Repeat("Krátká věta. ", 100)
	got := sanitizeInput(in, 200)
	if utf8.RuneCountInString(got) > 200 {
		t.Errorf("output longer than budget: %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected cut at sentence boundary, got %q", got[len(got)-10:])
	}
}
