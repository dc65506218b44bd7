package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"lexnews/internal/usage"
)

// Client wraps the OpenAI chat completions API for the three call sites
// of the pipeline. Every method reports the call's token usage so the
// driver can account for it explicitly.
type Client struct {
	api   openai.Client
	model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}
}

// complete performs one chat completion. maxTokens <= 0 means no cap.
func (c *Client) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, usage.Usage, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(maxTokens)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", usage.Usage{}, fmt.Errorf("openai request failed: %w", err)
	}

	u := usageFrom(resp)
	if len(resp.Choices) == 0 {
		return "", u, fmt.Errorf("no response from openai")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), u, nil
}

// usageFrom extracts token counts from a response without ever failing.
// The API spells the counters prompt_tokens/completion_tokens; some
// gateways use input_tokens/output_tokens instead, so both are accepted.
// Anything malformed counts as zero.
func usageFrom(resp *openai.ChatCompletion) usage.Usage {
	if resp == nil {
		return usage.Usage{}
	}
	u := resp.Usage
	if u.JSON.PromptTokens.Valid() || u.JSON.CompletionTokens.Valid() {
		return usage.Usage{InputTokens: u.PromptTokens, OutputTokens: u.CompletionTokens}
	}

	var alt struct {
		InputTokens  int64 `json:"input_tokens"`
		OutputTokens int64 `json:"output_tokens"`
	}
	if err := json.Unmarshal([]byte(u.RawJSON()), &alt); err != nil {
		return usage.Usage{}
	}
	return usage.Usage{InputTokens: alt.InputTokens, OutputTokens: alt.OutputTokens}
}

// sanitizeInput collapses whitespace and caps prompt material at a rune
// budget, cutting at a sentence boundary when one is close enough.
func sanitizeInput(content string, maxRunes int) string {
	content = strings.ReplaceAll(content, "\r", "")
	content = strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(content) <= maxRunes {
		return content
	}

	runes := []rune(content)
	trimmed := string(runes[:maxRunes])
	if idx := strings.LastIndex(trimmed, ". "); idx > maxRunes/4 {
		trimmed = trimmed[:idx+1]
	}
	return trimmed
}
