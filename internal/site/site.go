// Package site writes the static output: one detail page per promoted
// item and an index page listing them all. Templates escape everything
// they interpolate; article paragraph bodies arrive pre-rendered from the
// markdown package and are the only trusted HTML.
package site

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"lexnews/internal/markdown"
	"lexnews/internal/social"
)

// Page is everything one detail page needs.
type Page struct {
	Title        string
	Rating       int
	SourceURL    string
	SourceName   string
	PublishedStr string
	Blocks       []markdown.Block
	Posts        [3]social.Post
	CostLine     string

	// Slug names the output file, without extension.
	Slug string

	// Published orders the index; zero when unknown.
	Published time.Time
}

// Index is everything the listing page needs. Entries must already be
// sorted newest first.
type Index struct {
	DaysBack   int
	Collected  int
	Selected   int
	UpdatedStr string
	Entries    []IndexEntry
	CostLine   string
}

// IndexEntry is one row of the listing page.
type IndexEntry struct {
	Title        string
	Href         string
	Source       string
	Rating       int
	PublishedStr string
}

var (
	postTmpl  = template.Must(template.New("post").Parse(postTemplate))
	indexTmpl = template.Must(template.New("index").Parse(indexTemplate))
)

// RenderPost writes one detail page.
func RenderPost(w io.Writer, p Page) error {
	return postTmpl.Execute(w, p)
}

// RenderIndex writes the listing page.
func RenderIndex(w io.Writer, idx Index) error {
	return indexTmpl.Execute(w, idx)
}

// WriteSite emits posts/<slug>.html for every page plus index.html,
// overwriting any previous run's output.
func WriteSite(dir string, pages []Page, idx Index) error {
	postsDir := filepath.Join(dir, "posts")
	if err := os.MkdirAll(postsDir, 0755); err != nil {
		return fmt.Errorf("failed to create posts dir: %w", err)
	}

	for _, p := range pages {
		if err := writeFile(filepath.Join(postsDir, p.Slug+".html"), func(w io.Writer) error {
			return RenderPost(w, p)
		}); err != nil {
			return err
		}
	}

	return writeFile(filepath.Join(dir, "index.html"), func(w io.Writer) error {
		return RenderIndex(w, idx)
	})
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}

const postTemplate = `<!DOCTYPE html>
<html lang="cs">
<head>
  <meta charset="UTF-8" />
  <title>{{.Title}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; max-width: 840px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
    h1 { line-height: 1.2; }
    h2 { margin-top: 1.5rem; }
    .meta { color:#666; font-size: 0.9rem; margin-bottom: 1rem; }
    .back { margin-top: 2rem; }
    ul { padding-left: 1.2rem; }
    .pill { display:inline-block; padding:.15rem .5rem; border:1px solid #ccc; border-radius:999px; font-size:.8rem; color:#333; }
    hr { border:none; border-top:1px solid #eee; margin:1.5rem 0; }
    a { color:#0b57d0; text-decoration:none; }
    a:hover { text-decoration:underline; }
  </style>
</head>
<body>
  <a class="pill" href="../index.html">← Přehled</a>
  <h1>{{.Title}}</h1>
  <div class="meta">
    Poutavost: <strong>{{.Rating}}/5</strong> &nbsp;|&nbsp; Zdroj: <a href="{{.SourceURL}}" target="_blank" rel="noopener">odkaz</a> &nbsp;|&nbsp; Publikováno: {{.PublishedStr}}
  </div>
{{range .Blocks}}{{if .IsHeading}}{{if eq .Level 2}}  <h2>{{.Text}}</h2>
{{else}}  <h3>{{.Text}}</h3>
{{end}}{{else}}  <p>{{.HTML}}</p>
{{end}}{{end}}
  <hr />
  <h2>Tipy na příspěvky na LinkedIn</h2>
  <ul>
{{range .Posts}}    <li><strong>{{.Heading}}:</strong> {{.Body}}</li>
{{end}}  </ul>

  <p class="meta">{{.CostLine}}</p>
  <p class="back"><a href="../index.html">← Zpět na přehled</a></p>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html lang="cs">
<head>
  <meta charset="UTF-8" />
  <title>Právní novinky – AI generátor</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; max-width: 900px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
    h1 { line-height: 1.2; }
    .meta { color:#666; font-size: 0.9rem; }
    ul.posts { list-style: none; padding-left: 0; }
    ul.posts > li { margin: 1rem 0 1.25rem; }
    a { color:#0b57d0; text-decoration:none; }
    a:hover { text-decoration:underline; }
  </style>
</head>
<body>
  <h1>Právní novinky – AI generované články</h1>
  <p>Tento web automaticky sbírá české právní novinky (posledních {{.DaysBack}} dní), hodnotí jejich poutavost (1–5) a pro relevantní témata (3–5) generuje stručné články a 3 tipy na příspěvky na LinkedIn. Bez reklamy, pouze informativní publicita.</p>
  <p class="meta">Poslední aktualizace: {{.UpdatedStr}} &nbsp;|&nbsp; Sebráno: {{.Collected}}, vybráno: {{.Selected}}</p>

  <h2>Seznam článků</h2>
  <ul class="posts">
{{range .Entries}}    <li>
      <a href="{{.Href}}">{{.Title}}</a>
      <div class="meta">Poutavost: <strong>{{.Rating}}/5</strong> &nbsp;|&nbsp; Zdroj: {{.Source}} &nbsp;|&nbsp; Publikováno: {{.PublishedStr}}</div>
    </li>
{{else}}    <li>Zatím nic k zobrazení.</li>
{{end}}  </ul>

  <p class="meta">{{.CostLine}}</p>
</body>
</html>
`
