// Package article post-processes generated markdown so that every
// published document satisfies the two content policies: a link to the
// advisory page and at least two section headings. The policies are
// enforced here regardless of what the model returned, so an empty
// generation still yields a minimal valid document.
package article

import (
	"strings"
)

// AdvisoryURL is the page every article must link to.
const AdvisoryURL = "https://www.springwalk.cz/pravni-poradenstvi/"

// advisorySentence is appended verbatim when the link is missing.
const advisorySentence = "Pokud si nejste jisti, co novinka znamená pro vás, pomůže vám [právní poradenství Spring Walk](" + AdvisoryURL + ")."

var sectionTitlesTwo = [2]string{"Co se stalo", "Co z toho plyne"}
var sectionTitlesThree = [3]string{"Co se stalo", "Souvislosti", "Co z toho plyne"}

// EnforcePolicies applies the link policy and then the structure policy.
func EnforcePolicies(md string) string {
	return EnsureSections(EnsureAdvisoryLink(md))
}

// EnsureAdvisoryLink appends the advisory sentence unless the advisory
// URL already appears somewhere in the document.
func EnsureAdvisoryLink(md string) string {
	if strings.Contains(md, AdvisoryURL) {
		return md
	}
	md = strings.TrimSpace(md)
	if md == "" {
		return advisorySentence
	}
	return md + "\n\n" + advisorySentence
}

// EnsureSections guarantees at least two markdown headings. A document
// that already has two is returned unchanged. Otherwise the paragraphs
// are split into two sections (three if there are more than three
// paragraphs) with fixed titles inserted ahead of each group; paragraph
// order and content are preserved exactly.
func EnsureSections(md string) string {
	paragraphs := SplitParagraphs(md)
	if countHeadings(paragraphs) >= 2 {
		return md
	}

	n := len(paragraphs)
	var groups [][]string
	var titles []string
	if n <= 3 {
		k := n / 2
		groups = [][]string{paragraphs[:k], paragraphs[k:]}
		titles = sectionTitlesTwo[:]
	} else {
		a, b := n/3, 2*n/3
		groups = [][]string{paragraphs[:a], paragraphs[a:b], paragraphs[b:]}
		titles = sectionTitlesThree[:]
	}

	var out []string
	for i, group := range groups {
		out = append(out, "## "+titles[i])
		out = append(out, group...)
	}
	return strings.Join(out, "\n\n")
}

// SplitParagraphs groups non-blank lines into blank-line-separated
// paragraphs, trimming surrounding whitespace.
func SplitParagraphs(md string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(md, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimSpace(line))
	}
	flush()

	return paragraphs
}

func countHeadings(paragraphs []string) int {
	count := 0
	for _, p := range paragraphs {
		if strings.HasPrefix(p, "## ") || strings.HasPrefix(p, "### ") {
			count++
		}
	}
	return count
}
