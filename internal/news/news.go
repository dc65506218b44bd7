package news

import (
	"strings"
	"time"

	"lexnews/internal/logger"
	"lexnews/internal/rss"
)

// Item is one canonical feed item, immutable once created.
// Published is nil when the feed carries no usable date.
type Item struct {
	Title     string
	Summary   string
	Link      string
	Source    string
	Published *time.Time
	Topic     string
}

// Scored is an Item with the classifier's 1-5 rating attached.
type Scored struct {
	Item
	Rating int
}

// Normalize turns one raw feed entry into an Item. The second return value
// is false when the entry is unusable: no link, or no non-empty title.
// Absent fields on the raw entry are treated as unknown, never as errors.
func Normalize(entry rss.Entry) (Item, bool) {
	raw := entry.Item
	if raw == nil || raw.Link == "" {
		return Item{}, false
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return Item{}, false
	}

	summary := raw.Description
	if summary == "" {
		summary = raw.Content
	}

	published := raw.PublishedParsed
	if published == nil {
		published = raw.UpdatedParsed
	}

	topic := ""
	if len(raw.Categories) > 0 {
		topic = strings.TrimSpace(raw.Categories[0])
	}

	return Item{
		Title:     title,
		Summary:   summary,
		Link:      raw.Link,
		Source:    entry.Source,
		Published: published,
		Topic:     topic,
	}, true
}

// NormalizeAll applies Normalize to every entry, in feed order.
func NormalizeAll(entries []rss.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		item, ok := Normalize(e)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Filter drops duplicate links and items published before the lookback
// cutoff. The first occurrence of a link wins, in feed order. Items without
// a publish date are always kept: feeds that omit dates must not be
// silently excluded.
func Filter(items []Item, now time.Time, lookbackDays int) []Item {
	cutoff := now.AddDate(0, 0, -lookbackDays)
	seenLinks := map[string]struct{}{}
	var kept []Item

	for _, item := range items {
		if _, dup := seenLinks[item.Link]; dup {
			logger.Debug("duplicate link dropped", "title", item.Title)
			continue
		}
		if item.Published != nil && item.Published.Before(cutoff) {
			logger.Debug("item outside lookback window", "title", item.Title)
			continue
		}
		seenLinks[item.Link] = struct{}{}
		kept = append(kept, item)
	}

	return kept
}
