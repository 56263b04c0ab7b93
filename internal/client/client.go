// Package client is the HTTP client for the puzzle service. Three endpoints:
// the puzzle page, the puzzle input, and the answer submission. Responses are
// HTML/text bodies; classification of submission prose happens elsewhere.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"aoc_companion/internal/config"
	"aoc_companion/internal/models"
)

const maxHops = 15

type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func New(cfg *config.Config) *Client {
	timeout := cfg.HTTP.TimeoutSec
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		client: &http.Client{
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
			Timeout: time.Duration(timeout) * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxHops {
					return fmt.Errorf("stopped after %d redirects (maxHops exceeded)", maxHops)
				}
				return nil
			},
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.HTTP.UserAgent(),
	}
}

// BaseURL is the service origin, for link rewriting.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) puzzleURL(key models.PuzzleKey) string {
	// The service wants unpadded days in URLs, unlike cache paths.
	return fmt.Sprintf("%s/%d/day/%d", c.baseURL, key.Year, key.Day)
}

// FetchPuzzle downloads the raw puzzle page. The session token is optional;
// without it the page still loads but only shows part 1, even when the user
// has unlocked part 2.
func (c *Client) FetchPuzzle(ctx context.Context, key models.PuzzleKey, sessionToken string) (string, error) {
	body, status, err := c.get(ctx, c.puzzleURL(key), sessionToken)
	if err != nil {
		return "", fmt.Errorf("fetch puzzle %s: %w", key, err)
	}
	if status != http.StatusOK {
		return "", &models.StatusError{Code: status, Status: fmt.Sprintf("%d fetching puzzle %s", status, key)}
	}
	return body, nil
}

// DownloadInput downloads the user's puzzle input. Requires a session token.
func (c *Client) DownloadInput(ctx context.Context, key models.PuzzleKey, sessionToken string) (string, error) {
	body, status, err := c.get(ctx, c.puzzleURL(key)+"/input", sessionToken)
	if err != nil {
		return "", fmt.Errorf("download input %s: %w", key, err)
	}
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusBadRequest:
		return "", fmt.Errorf("invalid session token, please reconfigure: %w", &models.StatusError{Code: status, Status: "400 Bad Request"})
	case http.StatusNotFound:
		return "", fmt.Errorf("puzzle input not available yet: %w", &models.StatusError{Code: status, Status: "404 Not Found"})
	default:
		return "", &models.StatusError{Code: status, Status: fmt.Sprintf("%d downloading input %s", status, key)}
	}
}

// SubmitAnswer posts an answer for one part and returns the raw response
// body for classification.
func (c *Client) SubmitAnswer(ctx context.Context, key models.PuzzleKey, part int, answer, sessionToken string) (string, error) {
	form := url.Values{}
	form.Set("level", fmt.Sprintf("%d", part))
	form.Set("answer", answer)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.puzzleURL(key)+"/answer", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	c.setHeaders(req, sessionToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, status, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("submit answer %s part %d: %w", key, part, err)
	}
	if status != http.StatusOK {
		return "", &models.StatusError{Code: status, Status: fmt.Sprintf("%d submitting answer %s", status, key)}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL, sessionToken string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, err
	}
	c.setHeaders(req, sessionToken)
	return c.do(req)
}

func (c *Client) setHeaders(req *http.Request, sessionToken string) {
	req.Header.Set("User-Agent", c.userAgent)
	if sessionToken != "" {
		req.Header.Set("Cookie", "session="+sessionToken)
	}
}

func (c *Client) do(req *http.Request) (string, int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		utf8Reader = resp.Body
	}
	bodyBytes, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(bodyBytes), resp.StatusCode, nil
}
