// Package service orchestrates puzzle retrieval and submission: availability
// check, cache lookup, remote fetch, parse, cache population, and the
// submission flow through the cooldown gate and response classifier.
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"aoc_companion/internal/availability"
	"aoc_companion/internal/cache"
	"aoc_companion/internal/classify"
	"aoc_companion/internal/cooldown"
	"aoc_companion/internal/models"
	"aoc_companion/internal/parse"
	"aoc_companion/internal/stats"
)

// Remote is the upstream puzzle service. *client.Client is the production
// implementation.
type Remote interface {
	FetchPuzzle(ctx context.Context, key models.PuzzleKey, sessionToken string) (string, error)
	DownloadInput(ctx context.Context, key models.PuzzleKey, sessionToken string) (string, error)
	SubmitAnswer(ctx context.Context, key models.PuzzleKey, part int, answer, sessionToken string) (string, error)
	BaseURL() string
}

// TokenSource supplies the session token. *session.Service is the production
// implementation.
type TokenSource interface {
	Token() (string, error)
}

// CooldownActiveError blocks a submission attempt locally, before the remote
// call, so the user's real attempt budget isn't burned on a request known to
// fail.
type CooldownActiveError struct {
	RemainingSeconds int
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("please wait %d seconds before submitting again", e.RemainingSeconds)
}

// GetResult is a retrieved puzzle plus where it came from.
type GetResult struct {
	Document  *models.PuzzleDocument
	FromCache bool
}

type PuzzleService struct {
	cache   *cache.PuzzleCache
	remote  Remote
	tokens  TokenSource
	tracker *cooldown.Tracker
	stats   *stats.Service
	now     func() time.Time

	mu     sync.Mutex
	panels map[models.PuzzleKey]*panelEntry

	// refreshHook is what the background auto-refresh invokes; tests
	// substitute it to observe trigger counts.
	refreshHook func(key models.PuzzleKey)
}

// New wires the service. now may be nil for the real clock.
func New(c *cache.PuzzleCache, remote Remote, tokens TokenSource, tracker *cooldown.Tracker, st *stats.Service, now func() time.Time) *PuzzleService {
	if now == nil {
		now = time.Now
	}
	s := &PuzzleService{
		cache:   c,
		remote:  remote,
		tokens:  tokens,
		tracker: tracker,
		stats:   st,
		now:     now,
		panels:  make(map[models.PuzzleKey]*panelEntry),
	}
	s.refreshHook = func(key models.PuzzleKey) {
		if err := s.RefreshPuzzle(context.Background(), key); err != nil {
			log.Printf("background refresh of %s failed: %v", key, err)
		}
	}
	return s
}

// GetPuzzle returns the puzzle document for key: availability gate first,
// then cache, then an authenticated remote fetch that populates the cache.
func (s *PuzzleService) GetPuzzle(ctx context.Context, key models.PuzzleKey) (*GetResult, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	if avail := availability.Check(key, s.now()); !avail.Available {
		return nil, &models.BlockedError{Reason: avail.Reason}
	}

	raw, hit, err := s.cache.Read(key)
	if err != nil {
		return nil, err
	}
	if hit {
		return &GetResult{Document: parse.Parse(raw, s.remote.BaseURL()), FromCache: true}, nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		return nil, err
	}

	raw, err = s.remote.FetchPuzzle(ctx, key, token)
	if err != nil {
		return nil, err
	}

	doc := parse.Parse(raw, s.remote.BaseURL())
	if err := s.cache.Write(key, raw); err != nil {
		return nil, err
	}
	return &GetResult{Document: doc, FromCache: false}, nil
}

// GetPuzzleForDisplay is GetPuzzle plus the staleness rule: a cache hit with
// part 2 missing triggers exactly one background refresh, while the cached
// content is returned immediately. A live panel for the key picks up the
// refreshed document when it lands.
func (s *PuzzleService) GetPuzzleForDisplay(ctx context.Context, key models.PuzzleKey) (*GetResult, error) {
	result, err := s.GetPuzzle(ctx, key)
	if err != nil {
		return nil, err
	}
	if result.FromCache && !result.Document.HasPart2() {
		go s.refreshHook(key)
	}
	return result, nil
}

// RefreshPuzzle drops the cache entry, refetches, and pushes the fresh
// document to the panel showing that key, if any.
func (s *PuzzleService) RefreshPuzzle(ctx context.Context, key models.PuzzleKey) error {
	if err := s.cache.Invalidate(key); err != nil {
		return err
	}
	result, err := s.GetPuzzle(ctx, key)
	if err != nil {
		return err
	}
	if panel := s.Panel(key); panel != nil {
		panel.UpdateContent(result.Document)
	}
	return nil
}

// DownloadInput fetches the user's puzzle input, serving a previously
// downloaded copy from the cache when present.
func (s *PuzzleService) DownloadInput(ctx context.Context, key models.PuzzleKey) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	if avail := availability.Check(key, s.now()); !avail.Available {
		return "", &models.BlockedError{Reason: avail.Reason}
	}

	input, hit, err := s.cache.ReadInput(key)
	if err != nil {
		return "", err
	}
	if hit {
		return input, nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		return "", err
	}
	input, err = s.remote.DownloadInput(ctx, key, token)
	if err != nil {
		return "", err
	}
	if err := s.cache.WriteInput(key, input); err != nil {
		return "", err
	}
	return input, nil
}

// SubmitAnswer runs the submission flow: local cooldown gate, remote submit,
// classification, and folding the outcome back into cooldown and stats. A
// transport-level failure returns before any state is touched — it is not a
// rate-limit signal.
func (s *PuzzleService) SubmitAnswer(ctx context.Context, key models.PuzzleKey, part int, answer string) (models.SubmissionOutcome, error) {
	var zero models.SubmissionOutcome

	if err := key.Validate(); err != nil {
		return zero, err
	}
	if part != 1 && part != 2 {
		return zero, fmt.Errorf("invalid part %d: must be 1 or 2", part)
	}

	ok, err := s.tracker.CanSubmit()
	if err != nil {
		return zero, err
	}
	if !ok {
		remaining, err := s.tracker.Remaining()
		if err != nil {
			return zero, err
		}
		return zero, &CooldownActiveError{RemainingSeconds: remaining}
	}

	token, err := s.tokens.Token()
	if err != nil {
		return zero, err
	}

	body, err := s.remote.SubmitAnswer(ctx, key, part, answer, token)
	if err != nil {
		return zero, err
	}

	outcome := classify.Classify(body)
	if err := s.tracker.RecordOutcome(outcome); err != nil {
		return outcome, err
	}

	if err := s.stats.RecordAnswer(key, part, answer); err != nil {
		log.Printf("record answer for %s: %v", key, err)
	}
	if outcome.Kind == models.OutcomeCorrect {
		if err := s.stats.MarkSolved(key, part); err != nil {
			log.Printf("mark %s part %d solved: %v", key, part, err)
		}
		// Part 2 unlocks after part 1; refresh so the cache self-heals.
		if err := s.RefreshPuzzle(ctx, key); err != nil {
			log.Printf("refresh after correct answer for %s: %v", key, err)
		}
	}
	return outcome, nil
}
