// Package social parses the delimiter-separated short-form reply into
// exactly three labeled posts. The model is asked for three blocks in a
// fixed label order; whatever comes back, the output has exactly three
// entries in that order, with missing trailing blocks backfilled.
package social

import (
	"regexp"
	"strings"
)

// Labels are the three fixed post headings, in output order.
var Labels = [3]string{
	"Společnost Spring Walk",
	"Jednatel (formální)",
	"Jednatel (hravý)",
}

// Post is one short-form block.
type Post struct {
	Heading string
	Body    string
}

var blockDelimiter = regexp.MustCompile(`(?m)^\s*---\s*$`)

// ParsePosts splits the raw reply on newline-bounded --- delimiters and
// assigns blocks to the three fixed positions. Position i takes the i-th
// parsed block; a missing block becomes the fixed label with an empty
// body. Within a block the first non-empty line is the heading (trailing
// colon stripped) and the remaining lines are joined with single spaces.
func ParsePosts(raw string) [3]Post {
	var blocks []string
	for _, b := range blockDelimiter.Split(raw, -1) {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}

	var posts [3]Post
	for i := range posts {
		if i < len(blocks) {
			posts[i] = parseBlock(blocks[i])
		} else {
			posts[i] = Post{Heading: Labels[i]}
		}
	}
	return posts
}

func parseBlock(block string) Post {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Post{}
	}

	return Post{
		Heading: strings.TrimSuffix(lines[0], ":"),
		Body:    strings.Join(lines[1:], " "),
	}
}
