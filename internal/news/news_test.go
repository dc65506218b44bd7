package news

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"lexnews/internal/rss"
)

func entry(title, link string, published *time.Time) rss.Entry {
	return rss.Entry{
		Item:   &gofeed.Item{Title: title, Link: link, PublishedParsed: published},
		Source: "Test Feed",
	}
}

func TestNormalize_DropsEntryWithoutLink(t *testing.T) {
	_, ok := Normalize(rss.Entry{Item: &gofeed.Item{Title: "Novela zákona"}})
	if ok {
		t.Fatal("entry without link should be dropped")
	}
}

func TestNormalize_DropsEntryWithBlankTitle(t *testing.T) {
	_, ok := Normalize(entry("   ", "https://example.cz/a", nil))
	if ok {
		t.Fatal("entry with whitespace-only title should be dropped")
	}
}

func TestNormalize_FallsBackToContentAndUpdatedDate(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := rss.Entry{
		Item: &gofeed.Item{
			Title:         "Rozhodnutí soudu",
			Link:          "https://example.cz/b",
			Content:       "plné znění",
			UpdatedParsed: &updated,
			Categories:    []string{"judikatura", "obchodní právo"},
		},
		Source: "Test Feed",
	}

	item, ok := Normalize(e)
	if !ok {
		t.Fatal("expected entry to normalize")
	}
	if item.Summary != "plné znění" {
		t.Errorf("expected content fallback for summary, got %q", item.Summary)
	}
	if item.Published == nil || !item.Published.Equal(updated) {
		t.Errorf("expected updated date fallback, got %v", item.Published)
	}
	if item.Topic != "judikatura" {
		t.Errorf("expected first category as topic, got %q", item.Topic)
	}
	if item.Source != "Test Feed" {
		t.Errorf("expected source carried over, got %q", item.Source)
	}
}

func TestFilter_KeepsFirstOccurrenceOfDuplicateLink(t *testing.T) {
	items := NormalizeAll([]rss.Entry{
		entry("První zpráva", "https://example.cz/same", nil),
		entry("Stejná zpráva jinde", "https://example.cz/same", nil),
		entry("Jiná zpráva", "https://example.cz/other", nil),
	})

	kept := Filter(items, time.Now().UTC(), 30)
	if len(kept) != 2 {
		t.Fatalf("expected 2 items, got %d", len(kept))
	}
	if kept[0].Title != "První zpráva" {
		t.Errorf("expected first occurrence to survive, got %q", kept[0].Title)
	}
}

func TestFilter_DropsItemsOlderThanLookbackWindow(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -31)
	fresh := now.AddDate(0, 0, -5)

	items := NormalizeAll([]rss.Entry{
		entry("Stará zpráva", "https://example.cz/old", &old),
		entry("Čerstvá zpráva", "https://example.cz/fresh", &fresh),
	})

	kept := Filter(items, now, 30)
	if len(kept) != 1 {
		t.Fatalf("expected 1 item, got %d", len(kept))
	}
	if kept[0].Title != "Čerstvá zpráva" {
		t.Errorf("wrong item survived: %q", kept[0].Title)
	}
}

func TestFilter_AlwaysKeepsItemsWithoutPublishDate(t *testing.T) {
	items := NormalizeAll([]rss.Entry{
		entry("Bez data", "https://example.cz/undated", nil),
	})

	kept := Filter(items, time.Now().UTC(), 1)
	if len(kept) != 1 {
		t.Fatalf("undated item must survive the window filter, got %d items", len(kept))
	}
}
