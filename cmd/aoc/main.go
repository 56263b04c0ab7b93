package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"aoc_companion/internal/app"
	"aoc_companion/internal/config"
	"aoc_companion/internal/models"
)

var Version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:     "aoc",
		Short:   "Advent of Code companion - view puzzles, download inputs, submit answers",
		Version: Version,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ~/.aoc/config.yaml)")

	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(inputCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(cacheCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openApp() (*app.App, error) {
	path := configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".aoc", "config.yaml")
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func parseKey(args []string) (models.PuzzleKey, error) {
	return models.NewKey(args[0], args[1])
}
