package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aoc_companion/internal/models"
	"aoc_companion/internal/service"
)

func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <year> <day> <part> <answer>",
		Short: "Submit an answer for one part",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args)
			if err != nil {
				return err
			}
			part, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid part %q", args[2])
			}
			answer := args[3]

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.Puzzles.SubmitAnswer(cmd.Context(), key, part, answer)
			if err != nil {
				var cooldownErr *service.CooldownActiveError
				if errors.As(err, &cooldownErr) {
					return fmt.Errorf("⏳ cooldown active: wait %d seconds before submitting again", cooldownErr.RemainingSeconds)
				}
				return err
			}

			switch outcome.Kind {
			case models.OutcomeCorrect:
				fmt.Printf("🎉 Correct! %s\n", outcome.Message)
			case models.OutcomeIncorrect:
				fmt.Printf("❌ Incorrect. %s\n", outcome.Message)
			case models.OutcomeWait:
				fmt.Printf("⏳ %s\n", outcome.Message)
			case models.OutcomeAlreadySolved:
				fmt.Printf("ℹ️  %s\n", outcome.Message)
			default:
				fmt.Printf("❓ Unrecognized response: %s\n", outcome.Message)
			}

			if outcome.WaitSeconds > 0 {
				fmt.Printf("Next submission allowed in %d seconds.\n", outcome.WaitSeconds)
			}
			return nil
		},
	}
}
