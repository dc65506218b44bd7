// Package app wires the pipeline together: fetch feeds, normalize and
// filter, classify each item, generate content for the promoted ones,
// and write the static site plus the cost report. The run is sequential;
// one item is fully processed before the next begins, and a failed model
// call degrades that item's output without aborting the run.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"lexnews/internal/ai"
	"lexnews/internal/article"
	"lexnews/internal/config"
	"lexnews/internal/logger"
	"lexnews/internal/markdown"
	"lexnews/internal/news"
	"lexnews/internal/rss"
	"lexnews/internal/scraper"
	"lexnews/internal/site"
	"lexnews/internal/social"
	"lexnews/internal/usage"
)

// Run executes one full pipeline pass. The only fatal condition is
// missing required configuration; everything downstream degrades per the
// documented defaults.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	now := time.Now().UTC()

	feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load feeds config: %w", err)
	}

	entries := rss.FetchAll(feeds)
	items := news.NormalizeAll(entries)
	collected := news.Filter(items, now, cfg.DaysBack)
	logger.Info("items collected", "raw", len(entries), "kept", len(collected))

	client := ai.NewClient(cfg.OpenAIAPIKey, cfg.Model)
	counters := &usage.Counters{}

	selected := classifyAll(ctx, client, counters, collected)
	logger.Info("items selected", "collected", len(collected), "selected", len(selected))

	pages := generateAll(ctx, client, counters, cfg, selected)

	pricing := usage.Pricing{
		InputPerMillion:  cfg.InputPricePerM,
		OutputPerMillion: cfg.OutputPricePerM,
		USDCZKRate:       cfg.USDCZKRate,
	}
	report := usage.BuildReport(counters, pricing, cfg.Model, cfg.DaysBack, feeds, len(collected), len(selected))
	costLine := report.SummaryLine()
	logger.Info("run cost", "input_tokens", report.InputTokens, "output_tokens", report.OutputTokens,
		"usd", report.CostUSD, "czk", report.CostCZK)

	for i := range pages {
		pages[i].CostLine = costLine
	}
	idx := buildIndex(cfg.DaysBack, len(collected), len(selected), pages, costLine, now)

	if err := site.WriteSite(cfg.OutputDir, pages, idx); err != nil {
		return err
	}
	if err := report.Save(filepath.Join(cfg.OutputDir, "cost_report.json")); err != nil {
		return err
	}

	logger.Info("run finished", "pages", len(pages))
	return nil
}

// relevanceClassifier rates one item; *ai.Client satisfies it.
type relevanceClassifier interface {
	ClassifyRelevance(ctx context.Context, title, summary string) (int, usage.Usage, error)
}

// classifyAll rates every candidate and keeps those at or above the
// promotion threshold. A failed call falls back to the conservative
// default rating, which never promotes.
func classifyAll(ctx context.Context, client relevanceClassifier, counters *usage.Counters, items []news.Item) []news.Scored {
	var selected []news.Scored
	for _, item := range items {
		rating, u, err := client.ClassifyRelevance(ctx, item.Title, item.Summary)
		counters.Add(u)
		if err != nil {
			logger.Warn("classification failed, using default rating", "title", item.Title, "err", err)
		}
		logger.Debug("item rated", "title", item.Title, "rating", rating)
		if rating >= ai.PromotionThreshold {
			selected = append(selected, news.Scored{Item: item, Rating: rating})
		}
	}
	return selected
}

// generateAll produces article and short-form content for each promoted
// item and renders it into a page. Generation failures degrade to the
// policy-enforced minimal document.
func generateAll(ctx context.Context, client *ai.Client, counters *usage.Counters, cfg *config.Config, selected []news.Scored) []site.Page {
	pages := make([]site.Page, 0, len(selected))
	usedSlugs := map[string]int{}

	for _, s := range selected {
		summary := s.Summary
		if cfg.ScrapeFullText {
			if full, err := scraper.ExtractArticle(s.Link); err == nil && len(full.Content) > 200 {
				summary = full.Content
				logger.Debug("using scraped article text", "title", s.Title, "chars", len(full.Content))
			} else if err != nil {
				logger.Debug("scrape failed, using feed annotation", "title", s.Title, "err", err)
			}
		}

		draft, u, err := client.GenerateArticle(ctx, s.Title, summary, s.Link)
		counters.Add(u)
		if err != nil {
			logger.Warn("article generation failed", "title", s.Title, "err", err)
			draft = ""
		}
		md := article.EnforcePolicies(draft)

		raw, u, err := client.GenerateLinkedInPosts(ctx, s.Title, summary)
		counters.Add(u)
		if err != nil {
			logger.Warn("post generation failed", "title", s.Title, "err", err)
			raw = ""
		}

		var published time.Time
		if s.Published != nil {
			published = *s.Published
		}

		pages = append(pages, site.Page{
			Title:        s.Title,
			Rating:       s.Rating,
			SourceURL:    s.Link,
			SourceName:   s.Source,
			PublishedStr: site.FormatDate(s.Published),
			Blocks:       markdown.Render(md),
			Posts:        social.ParsePosts(raw),
			Slug:         uniqueSlug(usedSlugs, site.Slugify(s.Title)),
			Published:    published,
		})
	}
	return pages
}

func uniqueSlug(used map[string]int, slug string) string {
	used[slug]++
	if n := used[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}

// buildIndex lists the pages newest first; undated items sort last.
func buildIndex(daysBack, collected, selected int, pages []site.Page, costLine string, now time.Time) site.Index {
	ordered := make([]site.Page, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Published.After(ordered[j].Published)
	})

	entries := make([]site.IndexEntry, 0, len(ordered))
	for _, p := range ordered {
		entries = append(entries, site.IndexEntry{
			Title:        p.Title,
			Href:         "posts/" + p.Slug + ".html",
			Source:       p.SourceName,
			Rating:       p.Rating,
			PublishedStr: p.PublishedStr,
		})
	}

	return site.Index{
		DaysBack:   daysBack,
		Collected:  collected,
		Selected:   selected,
		UpdatedStr: site.FormatDate(&now),
		Entries:    entries,
		CostLine:   costLine,
	}
}
