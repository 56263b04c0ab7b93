package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aoc_companion/internal/models"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the puzzle cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear [year] [day]",
		Short: "Drop cached puzzles: everything, one year, or one day",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			switch len(args) {
			case 0:
				if err := a.Cache.InvalidateAll(); err != nil {
					return err
				}
				fmt.Println("Puzzle cache cleared.")
			case 1:
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				if err := a.Cache.InvalidateYear(year); err != nil {
					return err
				}
				fmt.Printf("Puzzle cache for %d cleared.\n", year)
			case 2:
				key, err := models.NewKey(args[0], args[1])
				if err != nil {
					return err
				}
				if err := a.Cache.Invalidate(key); err != nil {
					return err
				}
				fmt.Printf("Cache entry for %s cleared.\n", key)
			}
			return nil
		},
	})

	return cmd
}
