package site

import (
	"strings"
)

// diacritics folds Czech (and a few German) letters to ASCII for slugs.
var diacritics = map[rune]rune{
	'á': 'a', 'č': 'c', 'ď': 'd', 'é': 'e', 'ě': 'e',
	'í': 'i', 'ň': 'n', 'ó': 'o', 'ř': 'r', 'š': 's',
	'ť': 't', 'ú': 'u', 'ů': 'u', 'ý': 'y', 'ž': 'z',
	'ä': 'a', 'ö': 'o', 'ü': 'u',
}

const maxSlugLen = 60

// Slugify builds a filesystem-safe slug from a title: lowercase, folded
// diacritics, runs of anything else collapsed to a single dash, at most
// 60 characters. An empty result falls back to "clanek".
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if folded, ok := diacritics[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return "clanek"
	}
	return slug
}
