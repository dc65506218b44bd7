package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Article is the extracted body of a source page.
type Article struct {
	Title   string
	Content string
	URL     string
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

// contentSelectors are tried in order until one yields enough paragraphs.
var contentSelectors = []string{
	"article p",
	".article p",
	".content p",
	".post-content p",
	".entry-content p",
	"main p",
	"#content p",
	"p",
}

// junkIndicators mark navigation and boilerplate lines to drop.
var junkIndicators = []string{
	"cookie", "gdpr", "reklama", "inzerce",
	"přečtěte si také", "čtěte také", "celý článek",
	"sdílet", "přihlásit", "newsletter", "předplatné",
}

// ExtractArticle fetches a source page and pulls out its article text.
// Best effort: any failure is reported to the caller, which falls back to
// the feed annotation.
func ExtractArticle(url string) (*Article, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	content := cleanContent(extractParagraphs(doc))
	if content == "" {
		return nil, fmt.Errorf("no article content found")
	}

	return &Article{
		Title:   strings.TrimSpace(doc.Find("h1").First().Text()),
		Content: content,
		URL:     url,
	}, nil
}

func extractParagraphs(doc *goquery.Document) []string {
	for _, selector := range contentSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			return paragraphs
		}
	}
	return nil
}

// cleanContent drops boilerplate lines, normalizes whitespace and caps
// the result so article prompts stay within budget.
func cleanContent(paragraphs []string) string {
	var kept []string
	total := 0

	for _, p := range paragraphs {
		p = strings.Join(strings.Fields(p), " ")
		if len(p) < 30 || isJunk(p) {
			continue
		}
		if total+len(p) > 6000 {
			break
		}
		kept = append(kept, p)
		total += len(p) + 2
	}

	return strings.Join(kept, "\n\n")
}

func isJunk(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range junkIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
