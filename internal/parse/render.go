package parse

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

var (
	reSpaces    = regexp.MustCompile(`[ \t]+`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
)

var blockBreakTags = []string{"p", "li", "pre", "h1", "h2", "h3", "h4", "h5", "h6"}

// PlainText flattens a puzzle HTML fragment into readable terminal text.
// Block elements become line breaks before the tags are stripped; without
// this the stripped text runs together into one line.
func PlainText(fragment string) string {
	processed := fragment
	for _, tag := range blockBreakTags {
		processed = strings.ReplaceAll(processed, "</"+tag+">", "</"+tag+">\n\n")
	}
	processed = strings.ReplaceAll(processed, "<br>", "\n")
	processed = strings.ReplaceAll(processed, "<br/>", "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(processed))
	if err != nil {
		return fragment
	}
	return normalizeText(doc.Text())
}

func normalizeText(text string) string {
	text = reSpaces.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Excerpt pulls a short readable summary out of a full puzzle page, for
// list and status displays where the whole document is too much.
func Excerpt(rawHTML, pageURL string, maxLen int) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return "", err
	}

	text := article.Excerpt
	if text == "" {
		text = PlainText(article.Content)
	}
	text = strings.TrimSpace(text)
	if runes := []rune(text); maxLen > 0 && len(runes) > maxLen {
		text = string(runes[:maxLen]) + "…"
	}
	return text, nil
}
