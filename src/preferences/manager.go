package preferences

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/store"
)

// Manager loads and saves preferences through a store.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// NewManager creates a manager. A nil logger discards log output.
func NewManager(s store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: s, logger: logger}
}

// Load returns the saved preferences, or defaults when nothing is saved or
// the saved blob cannot be parsed. Only store failures are returned.
func (m *Manager) Load(ctx context.Context) (*Preferences, error) {
	data, err := m.store.Get(ctx, StorageKey)
	if errors.Is(err, model.ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	p, fixes, err := Decode(data)
	if err != nil {
		m.logger.Warn("stored preferences unreadable, using defaults",
			"key", StorageKey, "error", err)
		return p, nil
	}
	for _, fix := range fixes {
		m.logger.Debug("preferences corrected", "fix", fix)
	}
	return p, nil
}

// Save sanitizes and stores preferences. The sanitized value is returned.
func (m *Manager) Save(ctx context.Context, p *Preferences) (*Preferences, error) {
	p = p.Clone()
	for _, fix := range p.Sanitize() {
		m.logger.Debug("preferences corrected", "fix", fix)
	}

	data, err := p.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err := m.store.Set(ctx, StorageKey, data); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return p, nil
}

// Update merges updates into the saved preferences and stores the result.
func (m *Manager) Update(ctx context.Context, updates *Preferences) (*Preferences, error) {
	current, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	current.Merge(updates)
	return m.Save(ctx, current)
}

// Reset removes saved preferences so defaults apply.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	return nil
}
