// Package cooldown is the persisted submission rate limiter. The server
// punishes wrong answers with a wait window; that window has to survive
// process restarts, so it is stored as {started-at, duration} and the
// remaining time is always recomputed from the wall clock — never trusted as
// a static countdown.
package cooldown

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"aoc_companion/internal/models"
	"aoc_companion/internal/state"
)

// StorageKey is the single fixed key the wait window is persisted under.
const StorageKey = "aoc.waitState"

// Tracker has two logical states: idle and cooling down. The persisted
// record is considered expired (and is lazily cleared) as soon as the
// recomputed remaining time reaches zero.
type Tracker struct {
	mu    sync.Mutex
	store state.Store
	now   func() time.Time

	stopTick chan struct{}
	tickDone chan struct{}
}

// New builds a tracker over the given store. now may be nil for the real
// clock; tests inject a fake.
func New(store state.Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

func (t *Tracker) load() (*models.CooldownState, error) {
	data, ok, err := t.store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cooldown state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var cs models.CooldownState
	if err := json.Unmarshal(data, &cs); err != nil {
		// A corrupt record is dropped rather than wedging submissions.
		_ = t.store.Delete(StorageKey)
		return nil, nil
	}
	return &cs, nil
}

// remainingLocked recomputes the wait and lazily clears an expired record.
func (t *Tracker) remainingLocked() (int, error) {
	cs, err := t.load()
	if err != nil {
		return 0, err
	}
	if cs == nil {
		return 0, nil
	}
	elapsed := int(t.now().UnixMilli()-cs.StartedAtEpochMs) / 1000
	remaining := cs.DurationSeconds - elapsed
	if remaining <= 0 {
		if err := t.store.Delete(StorageKey); err != nil {
			return 0, fmt.Errorf("clear expired cooldown: %w", err)
		}
		return 0, nil
	}
	return remaining, nil
}

// Remaining is the number of seconds left before the next submission is
// allowed, zero when idle.
func (t *Tracker) Remaining() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked()
}

// CanSubmit reports whether a submission may be attempted now. Always
// recomputed on demand; the presentation tick is not involved.
func (t *Tracker) CanSubmit() (bool, error) {
	remaining, err := t.Remaining()
	return remaining == 0, err
}

// RecordOutcome folds a classified submission outcome into the persisted
// state: a server-declared wait starts a new window, a correct answer clears
// any window, everything else leaves the state alone.
func (t *Tracker) RecordOutcome(outcome models.SubmissionOutcome) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case outcome.Kind == models.OutcomeCorrect:
		if err := t.store.Delete(StorageKey); err != nil {
			return fmt.Errorf("clear cooldown: %w", err)
		}
		return nil
	case outcome.WaitSeconds > 0:
		cs := models.CooldownState{
			StartedAtEpochMs: t.now().UnixMilli(),
			DurationSeconds:  outcome.WaitSeconds,
		}
		data, err := json.Marshal(cs)
		if err != nil {
			return err
		}
		if err := t.store.Set(StorageKey, data); err != nil {
			return fmt.Errorf("persist cooldown: %w", err)
		}
		return nil
	default:
		return nil
	}
}

// Start launches the 1 Hz presentation tick. onTick receives the remaining
// seconds each second, for countdown display only; correctness of CanSubmit
// does not depend on the tick running. Stop must be called on shutdown.
func (t *Tracker) Start(onTick func(remaining int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopTick != nil {
		return
	}
	t.stopTick = make(chan struct{})
	t.tickDone = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				remaining, err := t.Remaining()
				if err != nil {
					continue
				}
				if onTick != nil {
					onTick(remaining)
				}
			}
		}
	}(t.stopTick, t.tickDone)
}

// Stop cancels the presentation tick.
func (t *Tracker) Stop() {
	t.mu.Lock()
	stop, done := t.stopTick, t.tickDone
	t.stopTick, t.tickDone = nil, nil
	t.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
