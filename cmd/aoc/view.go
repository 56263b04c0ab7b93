package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aoc_companion/internal/models"
	"aoc_companion/internal/parse"
)

// terminalPanel is the CLI's presentation surface: a refreshed document is
// simply printed below the one already shown.
type terminalPanel struct{}

func (terminalPanel) UpdateContent(doc *models.PuzzleDocument) {
	if doc.HasPart2() {
		fmt.Println("\n--- Part Two ---")
		fmt.Println(parse.PlainText(doc.Part2HTML))
	}
}

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <year> <day>",
		Short: "Show a puzzle (cached, or fetched on first view)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Puzzles.GetPuzzle(cmd.Context(), key)
			if err != nil {
				return err
			}

			printDocument(key, result.Document)

			// Stale-cache rule: a cached page missing part 2 may predate the
			// part 2 unlock. Show it immediately, then refresh behind the
			// display and let the panel print whatever arrives.
			if result.FromCache && !result.Document.HasPart2() {
				dispose, registered := a.Puzzles.RegisterPanel(key, terminalPanel{})
				if registered {
					defer dispose()
				}
				fmt.Println("\n(checking for part two...)")
				if err := a.Puzzles.RefreshPuzzle(context.Background(), key); err != nil {
					fmt.Printf("(refresh failed: %v)\n", err)
				}
			}
			return nil
		},
	}
}

func printDocument(key models.PuzzleKey, doc *models.PuzzleDocument) {
	fmt.Printf("🎄 %d Day %d: %s\n\n", key.Year, key.Day, doc.Title)
	fmt.Println(parse.PlainText(doc.Part1HTML))
	if doc.HasPart2() {
		fmt.Println("\n--- Part Two ---")
		fmt.Println(parse.PlainText(doc.Part2HTML))
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <year> <day>",
		Short: "Invalidate and refetch a puzzle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Puzzles.RefreshPuzzle(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Printf("Refreshed %s.\n", key)
			return nil
		},
	}
}
