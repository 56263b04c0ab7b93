// Package cache is the on-disk store for raw puzzle pages, laid out as
// <root>/<year>/day<NN>.html. Presence of the file is the sole cache-hit
// signal; there is no index and no TTL. Past puzzles are immutable once both
// parts are published, so write-once-read-many with manual invalidation is
// all the policy this cache needs; the only staleness case (part 2 not yet
// published) is handled above, by the service layer.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"aoc_companion/internal/models"
)

type PuzzleCache struct {
	root string
}

func New(root string) *PuzzleCache {
	return &PuzzleCache{root: root}
}

func (c *PuzzleCache) pagePath(key models.PuzzleKey) string {
	return filepath.Join(c.root, fmt.Sprintf("%d", key.Year), fmt.Sprintf("day%s.html", key.DayPadded()))
}

func (c *PuzzleCache) inputPath(key models.PuzzleKey) string {
	return filepath.Join(c.root, fmt.Sprintf("%d", key.Year), fmt.Sprintf("day%s.input.txt", key.DayPadded()))
}

// Has reports whether a durable artifact exists for the key.
func (c *PuzzleCache) Has(key models.PuzzleKey) bool {
	_, err := os.Stat(c.pagePath(key))
	return err == nil
}

// Read returns the cached raw HTML. A miss is (_, false, nil); an error is a
// real I/O failure, never a miss.
func (c *PuzzleCache) Read(key models.PuzzleKey) (string, bool, error) {
	data, err := os.ReadFile(c.pagePath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cached puzzle %s: %w", key, err)
	}
	return string(data), true, nil
}

// Write stores raw HTML for the key, creating the year directory as needed
// and overwriting unconditionally.
func (c *PuzzleCache) Write(key models.PuzzleKey, rawHTML string) error {
	return c.writeFile(c.pagePath(key), []byte(rawHTML))
}

// writeFile writes via a temp file and rename so a concurrent reader sees
// either the old or the new full content, never a partial file.
func (c *PuzzleCache) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// Invalidate removes the cached page for one key. Removing a missing entry
// is a no-op.
func (c *PuzzleCache) Invalidate(key models.PuzzleKey) error {
	if err := os.Remove(c.pagePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	return nil
}

// InvalidateYear removes every cached page for a year.
func (c *PuzzleCache) InvalidateYear(year int) error {
	dir := filepath.Join(c.root, fmt.Sprintf("%d", year))
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("invalidate year %d: %w", year, err)
	}
	return nil
}

// InvalidateAll removes the whole cache.
func (c *PuzzleCache) InvalidateAll() error {
	if err := os.RemoveAll(c.root); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

// HasInput reports whether the puzzle input has been downloaded.
func (c *PuzzleCache) HasInput(key models.PuzzleKey) bool {
	_, err := os.Stat(c.inputPath(key))
	return err == nil
}

// ReadInput returns the downloaded puzzle input, same contract as Read.
func (c *PuzzleCache) ReadInput(key models.PuzzleKey) (string, bool, error) {
	data, err := os.ReadFile(c.inputPath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cached input %s: %w", key, err)
	}
	return string(data), true, nil
}

// WriteInput stores the downloaded puzzle input beside the puzzle page.
func (c *PuzzleCache) WriteInput(key models.PuzzleKey, input string) error {
	return c.writeFile(c.inputPath(key), []byte(input))
}

// InputPath is where the input for the key lives on disk, for callers that
// hand the path to other tools.
func (c *PuzzleCache) InputPath(key models.PuzzleKey) string {
	return c.inputPath(key)
}
