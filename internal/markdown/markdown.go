// Package markdown converts the generator's markdown subset into
// structured content blocks: blank-line-separated paragraphs, ##/###
// headings, and inline [text](url) links. Heading text and link captures
// are HTML-escaped; paragraph prose is embedded as-is, trusting the
// upstream generator's text. That trust boundary is deliberate and only
// covers free prose, never extracted captures.
package markdown

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Kind discriminates block types.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
)

// Block is one rendered content block. For headings, Level is 2 or 3 and
// Text carries the title (escaped by the page template). For paragraphs,
// HTML carries the body with inline links already resolved.
type Block struct {
	Kind  Kind
	Level int
	Text  string
	HTML  template.HTML
}

// IsHeading reports whether the block is a heading. Used by page templates.
func (b Block) IsHeading() bool {
	return b.Kind == KindHeading
}

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

// Render classifies the document line by line into blocks. The
// transformation is one-directional; re-rendering rendered output is not
// supported.
func Render(md string) []Block {
	var blocks []Block
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, classify(strings.Join(current, " ")))
		current = nil
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	return blocks
}

func classify(paragraph string) Block {
	switch {
	case strings.HasPrefix(paragraph, "## "):
		return Block{Kind: KindHeading, Level: 2, Text: strings.TrimSpace(paragraph[3:])}
	case strings.HasPrefix(paragraph, "### "):
		return Block{Kind: KindHeading, Level: 3, Text: strings.TrimSpace(paragraph[4:])}
	default:
		return Block{Kind: KindParagraph, HTML: template.HTML(resolveLinks(paragraph))}
	}
}

// resolveLinks converts [text](url) occurrences into anchors opening in a
// new context. Both captures are escaped; the surrounding prose is not.
func resolveLinks(paragraph string) string {
	var b strings.Builder
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(paragraph, -1) {
		b.WriteString(paragraph[last:m[0]])
		text := html.EscapeString(paragraph[m[2]:m[3]])
		url := html.EscapeString(paragraph[m[4]:m[5]])
		b.WriteString(`<a href="` + url + `" target="_blank" rel="noopener">` + text + `</a>`)
		last = m[1]
	}
	b.WriteString(paragraph[last:])
	return b.String()
}
