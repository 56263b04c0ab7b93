package service

import (
	"github.com/google/uuid"

	"aoc_companion/internal/models"
)

// Panel is an opaque presentation surface currently displaying a puzzle. The
// core never renders; it only pushes structured documents.
type Panel interface {
	UpdateContent(doc *models.PuzzleDocument)
}

type panelEntry struct {
	token string
	panel Panel
}

// RegisterPanel associates a live panel with a key so background refreshes
// can push updated content to it. At most one panel per key: registering
// against an occupied key does not evict the existing handle and returns ok
// false. The returned dispose removes only this registration — a stale
// disposer can never evict a newer handle, because each registration carries
// its own token.
func (s *PuzzleService) RegisterPanel(key models.PuzzleKey, panel Panel) (dispose func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, occupied := s.panels[key]; occupied {
		return func() {}, false
	}

	token := uuid.NewString()
	s.panels[key] = &panelEntry{token: token, panel: panel}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if entry, exists := s.panels[key]; exists && entry.token == token {
			delete(s.panels, key)
		}
	}, true
}

// Panel returns the live panel for a key, nil when none is registered.
func (s *PuzzleService) Panel(key models.PuzzleKey) Panel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.panels[key]; ok {
		return entry.panel
	}
	return nil
}
