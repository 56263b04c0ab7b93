// Package stats is the solved-part bookkeeping kept in durable key-value
// storage, so the CLI can show progress and suggest previously submitted
// answers.
package stats

import (
	"encoding/json"
	"fmt"
	"sync"

	"aoc_companion/internal/models"
	"aoc_companion/internal/state"
)

const storageKey = "aoc.stats"

// PartStats is the record kept per (puzzle, part).
type PartStats struct {
	Solved     bool   `json:"solved"`
	LastAnswer string `json:"last_answer,omitempty"`
}

type Service struct {
	mu    sync.Mutex
	store state.Store
}

func New(store state.Store) *Service {
	return &Service{store: store}
}

func partKey(key models.PuzzleKey, part int) string {
	return fmt.Sprintf("%s/part%d", key, part)
}

func (s *Service) load() (map[string]PartStats, error) {
	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	entries := map[string]PartStats{}
	if !ok {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}
	return entries, nil
}

func (s *Service) save(entries map[string]PartStats) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.store.Set(storageKey, data); err != nil {
		return fmt.Errorf("persist stats: %w", err)
	}
	return nil
}

// RecordAnswer remembers the latest submitted answer for a part.
func (s *Service) RecordAnswer(key models.PuzzleKey, part int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entry := entries[partKey(key, part)]
	entry.LastAnswer = answer
	entries[partKey(key, part)] = entry
	return s.save(entries)
}

// MarkSolved records a part as solved.
func (s *Service) MarkSolved(key models.PuzzleKey, part int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entry := entries[partKey(key, part)]
	entry.Solved = true
	entries[partKey(key, part)] = entry
	return s.save(entries)
}

// Part returns the stats for one (puzzle, part), zero-valued when nothing
// has been recorded yet.
func (s *Service) Part(key models.PuzzleKey, part int) (PartStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return PartStats{}, err
	}
	return entries[partKey(key, part)], nil
}
