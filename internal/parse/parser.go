// Package parse turns raw puzzle pages into structured documents. All
// functions are pure and best-effort: malformed HTML degrades (placeholder
// title, missing parts) instead of failing.
package parse

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aoc_companion/internal/models"
)

// FallbackTitle is used when the day heading cannot be found.
const FallbackTitle = "Advent of Code Puzzle"

var reDayTitle = regexp.MustCompile(`--- Day \d+: (.+?) ---`)

// Parse extracts the day title and the puzzle article blocks from a raw
// puzzle page. Root-relative links and resources are rewritten against
// baseURL, because the extracted fragments are displayed outside the original
// page and would otherwise point nowhere. A single-article page (part 2 not
// unlocked) is normal, not an error.
func Parse(rawHTML, baseURL string) *models.PuzzleDocument {
	result := &models.PuzzleDocument{Title: FallbackTitle}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return result
	}

	rewriteRelativeRefs(doc, baseURL)

	articles := doc.Find(`article.day-desc`)
	articles.Each(func(i int, s *goquery.Selection) {
		html, err := s.Html()
		if err != nil {
			return
		}
		switch i {
		case 0:
			result.Part1HTML = html
		case 1:
			result.Part2HTML = html
		}
	})

	heading := articles.First().Find("h2").First().Text()
	if m := reDayTitle.FindStringSubmatch(heading); m != nil {
		result.Title = m[1]
	}

	return result
}

// rewriteRelativeRefs turns href="/..." and src="/..." into absolute
// references against the service origin.
func rewriteRelativeRefs(doc *goquery.Document, baseURL string) {
	base := strings.TrimRight(baseURL, "/")

	doc.Find("[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
			s.SetAttr("href", base+href)
		}
	})
	doc.Find("[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
			s.SetAttr("src", base+src)
		}
	})
}
