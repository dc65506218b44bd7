package ai

import (
	"context"
	"fmt"

	"lexnews/internal/usage"
)

const articleSystem = "Jsi zkušený právní copywriter. Píšeš česky, srozumitelně a bez reklamy."

const articlePromptTemplate = `Napiš česky srozumitelný a snadno čitelný článek pro širokou veřejnost (3–5 odstavců).
Styl: jasný, kratší věty, bez žargonu, bez reklamy a bez výzev „kontaktujte nás“.

POVINNÉ:
- Použij 1–2 mezititulky (Markdown „## “).
- V textu přirozeně uveď 1× odkaz na původní zdroj ve formátu [zdroj](%s).
- V závěru nebo v části „Co z toho plyne“ uveď 1× odkaz na [právní poradenství Spring Walk](https://www.springwalk.cz/pravni-poradenstvi/).
- Drž se faktů z podkladu, nic si nevymýšlej.

Podklad:
Titulek: %s
Anotace/Perex: %s

Na úplný konec přidej větu: „Zpracováno z veřejných zdrojů.“`

const postsSystem = "Jsi content specialista pro LinkedIn. Píšeš česky, věcně a přívětivě."

const postsPromptTemplate = `Vytvoř 3 různé krátké příspěvky na LinkedIn (česky), každý 2–3 věty, k tématu níže.
Každý blok začni NADPISEM „Společnost Spring Walk:“ / „Jednatel (formální):“ / „Jednatel (hravý):“ (v tomto přesném znění), poté text.
Bez reklamy a bez výzev „kontaktujte nás“.

Podklad:
Titulek: %s
Anotace/Perex: %s

Formát výstupu:
---
Společnost Spring Walk:
<2–3 věty>
---
Jednatel (formální):
<2–3 věty>
---
Jednatel (hravý):
<2–3 věty>
---`

// GenerateArticle produces the long-form markdown draft for one promoted
// item. The draft still has to pass the content policies in the article
// package; on failure an empty draft is returned and the policies turn it
// into a minimal document.
func (c *Client) GenerateArticle(ctx context.Context, title, summary, sourceURL string) (string, usage.Usage, error) {
	prompt := fmt.Sprintf(articlePromptTemplate, sourceURL, title, orPlaceholder(summary))
	return c.complete(ctx, articleSystem, prompt, 0.5, 900)
}

// GenerateLinkedInPosts produces the raw delimiter-separated short-form
// reply. Parsing into exactly three posts is the social package's job.
func (c *Client) GenerateLinkedInPosts(ctx context.Context, title, summary string) (string, usage.Usage, error) {
	prompt := fmt.Sprintf(postsPromptTemplate, title, orPlaceholder(summary))
	return c.complete(ctx, postsSystem, prompt, 0.7, 600)
}
