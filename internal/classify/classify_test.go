package classify_test

import (
	"strings"
	"testing"

	"aoc_companion/internal/classify"
	"aoc_companion/internal/models"
)

func page(message string) string {
	return `<html><body><main><article><p>` + message + `</p></article></main></body></html>`
}

func TestClassifyCorrect(t *testing.T) {
	got := classify.Classify(page("That's the right answer! You are one gold star closer."))
	if got.Kind != models.OutcomeCorrect {
		t.Fatalf("expected CORRECT, got %v", got.Kind)
	}
	if got.WaitSeconds != 0 {
		t.Fatalf("CORRECT must not carry a wait, got %d", got.WaitSeconds)
	}
}

func TestClassifyIncorrectWithWait(t *testing.T) {
	cases := []struct {
		body        string
		waitSeconds int
	}{
		{"That's not the right answer. Please wait one minute before trying again.", 60},
		{"That's not the right answer. Please wait 5 minutes before trying again.", 300},
		{"That's not the right answer. Please wait five minutes before trying again.", 300},
		{"That's not the right answer. Please wait ten seconds before trying again.", 10},
		{"That's not the right answer. Please wait 90 seconds before trying again.", 90},
		// Phrase present but duration unparseable: generic one-minute throttle.
		{"That's not the right answer. Please wait eleventy minutes before trying again.", 60},
		// No wait phrase at all: no cooldown declared.
		{"That's not the right answer; your answer is too low.", 0},
	}

	for _, tc := range cases {
		got := classify.Classify(page(tc.body))
		if got.Kind != models.OutcomeIncorrect {
			t.Errorf("%q: expected INCORRECT, got %v", tc.body, got.Kind)
			continue
		}
		if got.WaitSeconds != tc.waitSeconds {
			t.Errorf("%q: expected wait %d, got %d", tc.body, tc.waitSeconds, got.WaitSeconds)
		}
	}
}

func TestClassifyWait(t *testing.T) {
	body := "You gave an answer too recently; you have to wait after submitting an answer before trying again. You have 3m 25s left to wait."
	got := classify.Classify(page(body))
	if got.Kind != models.OutcomeWait {
		t.Fatalf("expected WAIT, got %v", got.Kind)
	}
	if got.WaitSeconds != 205 {
		t.Fatalf("expected 205 seconds, got %d", got.WaitSeconds)
	}
}

func TestClassifyWaitSecondsOnly(t *testing.T) {
	got := classify.Classify(page("You gave an answer too recently. You have 42s left to wait."))
	if got.Kind != models.OutcomeWait {
		t.Fatalf("expected WAIT, got %v", got.Kind)
	}
	if got.WaitSeconds != 42 {
		t.Fatalf("expected 42 seconds, got %d", got.WaitSeconds)
	}
}

func TestClassifyWaitWithoutParsableTime(t *testing.T) {
	got := classify.Classify(page("You gave an answer too recently; slow down."))
	if got.Kind != models.OutcomeWait {
		t.Fatalf("expected WAIT, got %v", got.Kind)
	}
	if got.WaitSeconds != 60 {
		t.Fatalf("expected default 60 seconds, got %d", got.WaitSeconds)
	}
}

func TestClassifyAlreadySolved(t *testing.T) {
	got := classify.Classify(page("You don't seem to be solving the right level. Did you already complete it?"))
	if got.Kind != models.OutcomeAlreadySolved {
		t.Fatalf("expected ALREADY_SOLVED, got %v", got.Kind)
	}
}

func TestClassifyUnknown(t *testing.T) {
	got := classify.Classify(page("Internal server error, try again later."))
	if got.Kind != models.OutcomeUnknown {
		t.Fatalf("expected UNKNOWN, got %v", got.Kind)
	}
	if !strings.Contains(got.Message, "Internal server error") {
		t.Fatalf("UNKNOWN should carry the server's message, got %q", got.Message)
	}
}

// Correct and incorrect messages share the words "right answer"; the full
// phrase has to disambiguate.
func TestClassifyDoesNotConfuseCorrectAndIncorrect(t *testing.T) {
	got := classify.Classify(page("That's not the right answer."))
	if got.Kind != models.OutcomeIncorrect {
		t.Fatalf("negative phrasing must classify as INCORRECT, got %v", got.Kind)
	}
}

func TestExtractMessagePullsArticleText(t *testing.T) {
	got := classify.ExtractMessage(page("That's the right answer!"))
	if got != "That's the right answer!" {
		t.Fatalf("unexpected message: %q", got)
	}
}
