package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingSession means no session token is configured.
var ErrMissingSession = errors.New("no session token configured")

// BlockedError is returned when a puzzle has not unlocked yet.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return e.Reason
}

// StatusError is a non-2xx response from the remote service.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %s", e.Status)
}

// PuzzleKey identifies one puzzle. Day is kept as an integer so that "2" and
// "02" from raw UI input collapse to the same key; the canonical string form
// zero-pads the day to two digits. Normalize at every lookup boundary —
// unpadded days leaking into paths cause silent cache misses.
type PuzzleKey struct {
	Year int
	Day  int
}

// NewKey parses raw year/day strings as they arrive from UI or CLI input.
func NewKey(year, day string) (PuzzleKey, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return PuzzleKey{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return PuzzleKey{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	k := PuzzleKey{Year: y, Day: d}
	if err := k.Validate(); err != nil {
		return PuzzleKey{}, err
	}
	return k, nil
}

func (k PuzzleKey) Validate() error {
	if k.Year < 2015 {
		return fmt.Errorf("invalid year %d: the event started in 2015", k.Year)
	}
	if k.Day < 1 || k.Day > 25 {
		return fmt.Errorf("invalid day %d: must be 1..25", k.Day)
	}
	return nil
}

// DayPadded is the canonical two-digit day ("02", "25").
func (k PuzzleKey) DayPadded() string {
	return fmt.Sprintf("%02d", k.Day)
}

// String is the canonical form, e.g. "2024/day02".
func (k PuzzleKey) String() string {
	return fmt.Sprintf("%d/day%s", k.Year, k.DayPadded())
}

// PuzzleDocument is the parsed puzzle page. It is derived from the cached
// raw HTML on every read, never persisted. An empty Part2HTML means part 2
// has not unlocked yet for that day.
type PuzzleDocument struct {
	Title     string
	Part1HTML string
	Part2HTML string
}

func (d *PuzzleDocument) HasPart2() bool {
	return d != nil && d.Part2HTML != ""
}

// CooldownState is the persisted submission wait window.
type CooldownState struct {
	StartedAtEpochMs int64 `json:"started_at_epoch_ms" bson:"started_at_epoch_ms"`
	DurationSeconds  int   `json:"duration_seconds" bson:"duration_seconds"`
}

// OutcomeKind tags a classified submission response.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeWait
	OutcomeAlreadySolved
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCorrect:
		return "CORRECT"
	case OutcomeIncorrect:
		return "INCORRECT"
	case OutcomeWait:
		return "WAIT"
	case OutcomeAlreadySolved:
		return "ALREADY_SOLVED"
	default:
		return "UNKNOWN"
	}
}

// SubmissionOutcome is one classified submission attempt. WaitSeconds is
// meaningful for INCORRECT and WAIT; zero means the server declared no wait.
type SubmissionOutcome struct {
	Kind        OutcomeKind
	WaitSeconds int
	Message     string
}
