package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc_companion/internal/parse"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <year> <day>",
		Short: "Show solve progress, cooldown, and a puzzle excerpt",
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

			fmt.Printf("🎄 %s\n", key)

			for part := 1; part <= 2; part++ {
				ps, err := a.Stats.Part(key, part)
				if err != nil {
					return err
				}
				mark := " "
				if ps.Solved {
					mark = "⭐"
				}
				line := fmt.Sprintf("  part %d [%s]", part, mark)
				if ps.LastAnswer != "" {
					line += fmt.Sprintf(" last answer: %s", ps.LastAnswer)
				}
				fmt.Println(line)
			}

			remaining, err := a.Tracker.Remaining()
			if err != nil {
				return err
			}
			if remaining > 0 {
				fmt.Printf("  cooldown: %dm %ds remaining\n", remaining/60, remaining%60)
			} else {
				fmt.Println("  cooldown: none")
			}

			if raw, hit, err := a.Cache.Read(key); err == nil && hit {
				excerpt, err := parse.Excerpt(raw, fmt.Sprintf("%s/%d/day/%d", a.Client.BaseURL(), key.Year, key.Day), 200)
				if err == nil && excerpt != "" {
					fmt.Printf("\n  %s\n", excerpt)
				}
			}
			return nil
		},
	}
}
