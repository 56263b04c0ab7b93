// Package classify maps the puzzle service's free-text submission responses
// to a fixed set of outcomes. The service answers with prose, not structured
// data, so this is an ordered pattern table: first match wins, defensively,
// even though the known message set does not overlap.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aoc_companion/internal/models"
)

// defaultWaitSeconds is the generic one-minute throttle assumed when a wait
// phrase is present but its duration cannot be parsed.
const defaultWaitSeconds = 60

var (
	rePleaseWait = regexp.MustCompile(`(?i)please wait (\w+) (minute|second)s?`)
	reTimeLeft   = regexp.MustCompile(`(?i)you have (?:(\d+)m )?(\d+)s left`)
)

// Closed lookup for the spelled-out durations the service uses.
var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Classify maps a raw submission response body to an outcome. It never
// fails: anything unrecognized is OutcomeUnknown with the extracted message
// attached so the caller can show the server's own words.
func Classify(responseBody string) models.SubmissionOutcome {
	lower := strings.ToLower(responseBody)
	message := ExtractMessage(responseBody)

	switch {
	case strings.Contains(lower, "that's the right answer"):
		return models.SubmissionOutcome{Kind: models.OutcomeCorrect, Message: message}

	case strings.Contains(lower, "not the right answer"):
		return models.SubmissionOutcome{
			Kind:        models.OutcomeIncorrect,
			WaitSeconds: parsePleaseWait(lower),
			Message:     message,
		}

	case strings.Contains(lower, "answer too recently"):
		return models.SubmissionOutcome{
			Kind:        models.OutcomeWait,
			WaitSeconds: parseTimeLeft(lower),
			Message:     message,
		}

	case strings.Contains(lower, "solving the right level"):
		return models.SubmissionOutcome{Kind: models.OutcomeAlreadySolved, Message: message}

	default:
		return models.SubmissionOutcome{Kind: models.OutcomeUnknown, Message: message}
	}
}

// parsePleaseWait extracts the cooldown from a "please wait <N> <unit>(s)"
// phrase. Returns 0 when no phrase is present (no cooldown declared).
func parsePleaseWait(lower string) int {
	m := rePleaseWait.FindStringSubmatch(lower)
	if m == nil {
		return 0
	}
	n, ok := wordNumbers[m[1]]
	if !ok {
		var err error
		n, err = strconv.Atoi(m[1])
		if err != nil {
			return defaultWaitSeconds
		}
	}
	if m[2] == "minute" {
		return n * 60
	}
	return n
}

// parseTimeLeft extracts the remaining cooldown from a "you have <M>m <S>s
// left" phrase. The minutes part is optional.
func parseTimeLeft(lower string) int {
	m := reTimeLeft.FindStringSubmatch(lower)
	if m == nil {
		return defaultWaitSeconds
	}
	seconds, err := strconv.Atoi(m[2])
	if err != nil {
		return defaultWaitSeconds
	}
	if m[1] != "" {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return defaultWaitSeconds
		}
		seconds += minutes * 60
	}
	return seconds
}

// ExtractMessage pulls the human-readable sentence out of a response page.
// The service wraps its verdict in <article><p>…</p></article>; a body that
// doesn't parse that way is collapsed to plain text instead.
func ExtractMessage(responseBody string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(responseBody))
	if err != nil {
		return strings.TrimSpace(responseBody)
	}
	if p := doc.Find("article p").First(); p.Length() > 0 {
		return strings.TrimSpace(collapseSpaces(p.Text()))
	}
	return strings.TrimSpace(collapseSpaces(doc.Text()))
}

var reWhitespace = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return reWhitespace.ReplaceAllString(s, " ")
}
