package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func inputCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "input <year> <day>",
		Short: "Download the puzzle input (cached after first download)",
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

			input, err := a.Puzzles.DownloadInput(cmd.Context(), key)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(input), 0o644); err != nil {
					return fmt.Errorf("write input to %s: %w", outPath, err)
				}
				fmt.Fprintf(os.Stderr, "Input for %s written to %s\n", key, outPath)
				return nil
			}
			fmt.Print(input)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write input to a file instead of stdout")
	return cmd
}
