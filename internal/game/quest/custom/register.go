package custom

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/la2go-board/internal/game/quest"
)

// RegisterAll creates and registers all custom NPC scripts into the manager.
func RegisterAll(m *quest.Manager) error {
	constructors := []func() *quest.Script{
		NewCurrencyManager,
	}

	for _, ctor := range constructors {
		s := ctor()
		if err := m.Register(s); err != nil {
			return fmt.Errorf("register script %q: %w", s.Name(), err)
		}
	}

	slog.Info("custom scripts registered", "count", len(constructors))
	return nil
}
