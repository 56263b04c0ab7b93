package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the service session token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [token]",
		Short: "Store the session token (reads stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprint(os.Stderr, "Paste session cookie value: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read token: %w", err)
				}
				token = strings.TrimSpace(line)
			}

			if err := a.Session.SetToken(token); err != nil {
				return err
			}
			fmt.Println("Session token stored.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Session.HasToken() {
				fmt.Println("Session token is configured.")
			} else {
				fmt.Println("No session token configured. Run: aoc session set")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Session.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Session token cleared.")
			return nil
		},
	})

	return cmd
}
