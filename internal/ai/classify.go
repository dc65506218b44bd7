package ai

import (
	"context"
	"fmt"
	"regexp"

	"lexnews/internal/usage"
)

const (
	// DefaultRating is used when the model reply cannot be parsed. It must
	// stay below PromotionThreshold so an unscorable item is never promoted.
	DefaultRating = 2

	// PromotionThreshold gates which items proceed to content generation.
	PromotionThreshold = 3
)

const classifySystem = "Odpovídej pouze číslem 1–5."

const classifyPromptTemplate = `Jsi právní analytik. Ohodnoť POUTAVOST pro odborný právnický blog na škále 1–5:
1 = drobná aktualita bez významu,
2 = okrajové,
3 = relevantní pro část čtenářů,
4 = významné (dopad/precedens),
5 = průlomové (zásadní novela/ÚS/SDEU).

Vrať pouze číslo 1–5, nic jiného.

Titulek: %s
Anotace: %s`

var ratingPattern = regexp.MustCompile(`[1-5]`)

// ClassifyRelevance rates one item 1-5. On a transport failure it returns
// DefaultRating together with the error so the caller can log and move on;
// an unparseable reply degrades to DefaultRating silently.
func (c *Client) ClassifyRelevance(ctx context.Context, title, summary string) (int, usage.Usage, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, title, orPlaceholder(summary))
	text, u, err := c.complete(ctx, classifySystem, prompt, 0.0, 0)
	if err != nil {
		return DefaultRating, u, err
	}
	return ParseRating(text), u, nil
}

// ParseRating extracts the first digit 1-5 found anywhere in the reply.
// A reply without one yields DefaultRating.
func ParseRating(reply string) int {
	match := ratingPattern.FindString(reply)
	if match == "" {
		return DefaultRating
	}
	return int(match[0] - '0')
}

func orPlaceholder(summary string) string {
	if summary == "" {
		return "(bez anotace)"
	}
	return sanitizeInput(summary, 6000)
}
