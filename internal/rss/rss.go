package rss

import (
	"os"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"lexnews/internal/logger"
)

// FeedsConfig is the YAML config structure:
//
// feeds:
//   - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// Entry pairs a parsed feed item with the title of the feed it came from.
type Entry struct {
	Item   *gofeed.Item
	Source string
}

// LoadFeeds reads the RSS feeds list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg.Feeds, nil
}

// FetchAll downloads and parses all feeds. A feed that fails to parse is
// logged and skipped; the run continues with whatever loaded.
func FetchAll(urls []string) []Entry {
	parser := gofeed.NewParser()
	var entries []Entry
	successCount := 0

	for _, url := range urls {
		feed, err := parser.ParseURL(url)
		if err != nil {
			logger.Warn("failed to parse feed", "url", url, "err", err)
			continue
		}
		source := feed.Title
		if source == "" {
			source = url
		}
		for _, item := range feed.Items {
			entries = append(entries, Entry{Item: item, Source: source})
		}
		successCount++
		logger.Info("feed loaded", "url", url, "items", len(feed.Items))
	}

	logger.Info("feeds processed", "ok", successCount, "total", len(urls))
	return entries
}
