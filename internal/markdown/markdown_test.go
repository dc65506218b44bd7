package markdown

import (
	"strings"
	"testing"
)

func TestRender_HeadingAndParagraphWithLink(t *testing.T) {
	blocks := Render("## Titulek\n\nOdstavec s odkazem [text](https://x) na zdroj.")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !blocks[0].IsHeading() || blocks[0].Level != 2 || blocks[0].Text != "Titulek" {
		t.Errorf("unexpected heading block %+v", blocks[0])
	}
	want := `Odstavec s odkazem <a href="https://x" target="_blank" rel="noopener">text</a> na zdroj.`
	if string(blocks[1].HTML) != want {
		t.Errorf("paragraph html:\n got %q\nwant %q", blocks[1].HTML, want)
	}
}

func TestRender_LevelThreeHeading(t *testing.T) {
	blocks := Render("### Podnadpis")
	if len(blocks) != 1 || blocks[0].Level != 3 || blocks[0].Text != "Podnadpis" {
		t.Errorf("unexpected blocks %+v", blocks)
	}
}

func TestRender_LinkCapturesAreEscaped(t *testing.T) {
	blocks := Render("viz [a<b](https://example.cz/?a=1&b=2)")
	html := string(blocks[0].HTML)
	if !strings.Contains(html, ">a&lt;b</a>") {
		t.Errorf("link text not escaped: %q", html)
	}
	if !strings.Contains(html, `href="https://example.cz/?a=1&amp;b=2"`) {
		t.Errorf("link url not escaped: %q", html)
	}
}

func TestRender_NonHTTPLinkLeftAsProse(t *testing.T) {
	blocks := Render("odkaz [soubor](ftp://example.cz/x) zůstane textem")
	if strings.Contains(string(blocks[0].HTML), "<a ") {
		t.Errorf("non-http link must not become an anchor: %q", blocks[0].HTML)
	}
}

func TestRender_BlankLinesSeparateParagraphs(t *testing.T) {
	blocks := Render("první\n\n\ndruhý\n\ntřetí")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(blocks))
	}
	for i, want := range []string{"první", "druhý", "třetí"} {
		if string(blocks[i].HTML) != want {
			t.Errorf("block %d: got %q, want %q", i, blocks[i].HTML, want)
		}
	}
}

func TestRender_ParagraphProseIsNotEscaped(t *testing.T) {
	// Free prose from the generator is trusted; only captures are escaped.
	blocks := Render("text s <em>důrazem</em>")
	if string(blocks[0].HTML) != "text s <em>důrazem</em>" {
		t.Errorf("prose must pass through untouched, got %q", blocks[0].HTML)
	}
}
