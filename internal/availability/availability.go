// Package availability decides whether a puzzle has unlocked yet. Puzzles
// unlock at midnight US Eastern (the service's fixed reference zone) each day
// of December 1–25. Pure date arithmetic; callers inject the current time.
package availability

import (
	"fmt"
	"time"

	"aoc_companion/internal/models"
)

// EST is the service's unlock zone, pinned to a fixed UTC-5 offset.
var EST = time.FixedZone("EST", -5*60*60)

const (
	releaseMonth = time.December
	lastDay      = 25
)

// Result of an availability check. Reason is a user-facing message and is
// only set when the puzzle is blocked.
type Result struct {
	Available bool
	Reason    string
}

// Check evaluates the unlock rules for key at the given instant. All past
// years are unconditionally available. A puzzle on its own unlock day is
// treated as available for the whole day.
func Check(key models.PuzzleKey, now time.Time) Result {
	est := now.In(EST)
	currentYear := est.Year()
	currentMonth := est.Month()
	currentDay := est.Day()

	if key.Year > currentYear {
		return blocked(fmt.Sprintf("🎄 Day %d of %d isn't available yet! Come back in December %d.", key.Day, key.Year, key.Year))
	}

	if key.Year == currentYear && currentMonth < releaseMonth {
		return blocked(fmt.Sprintf("🎄 Advent of Code %d starts on December 1st! Day %d will be available then.", key.Year, key.Day))
	}

	if key.Year == currentYear && currentMonth == releaseMonth && key.Day > currentDay {
		daysUntil := key.Day - currentDay
		when := fmt.Sprintf("(in %d days)", daysUntil)
		if daysUntil == 1 {
			when = "(tomorrow)"
		}
		return blocked(fmt.Sprintf("🎄 Day %d isn't available yet! It unlocks at midnight EST on December %d %s.", key.Day, key.Day, when))
	}

	return Result{Available: true}
}

func blocked(reason string) Result {
	return Result{Reason: reason}
}
