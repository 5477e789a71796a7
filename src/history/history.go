// Package history records the URLs produced by conversions and searches.
package history

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/apimgr/searchconv/src/database"
)

// Trigger names what produced a history entry.
type Trigger string

const (
	TriggerConvert  Trigger = "convert"
	TriggerSearch   Trigger = "search"
	TriggerBang     Trigger = "bang"
	TriggerShortcut Trigger = "shortcut"
	TriggerMenu     Trigger = "menu"
	TriggerAPI      Trigger = "api"
)

// DefaultLimit is the number of entries List returns when none is given.
const DefaultLimit = 20

// Entry is one produced URL.
// IDs use ULID format: conv_01HQXYZ...
type Entry struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Trigger      Trigger   `json:"trigger"`
	SourceURL    string    `json:"source_url,omitempty"`
	SourceEngine string    `json:"source_engine,omitempty"`
	TargetEngine string    `json:"target_engine"`
	Query        string    `json:"query"`
	Image        bool      `json:"image"`
	ResultURL    string    `json:"result_url"`
}

// Recorder accepts history entries.
type Recorder interface {
	Record(ctx context.Context, e *Entry) error
}

// Store keeps history in the history table.
type Store struct {
	db *database.DB

	mu      sync.Mutex
	entropy io.Reader
}

// New creates a history store on an open, migrated database.
func New(db *database.DB) *Store {
	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// newID generates a ULID-based id. Monotonic entropy keeps ids created in
// the same millisecond in creation order.
func (s *Store) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "conv_" + ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

// Record stores e, filling ID and CreatedAt when unset.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.ID == "" {
		e.ID = s.newID(e.CreatedAt)
	}

	image := 0
	if e.Image {
		image = 1
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO history (id, created_at, trigger_kind, source_url, source_engine,
			target_engine, query, image, result_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.UnixMilli(), string(e.Trigger), e.SourceURL, e.SourceEngine,
		e.TargetEngine, e.Query, image, e.ResultURL)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, created_at, trigger_kind, source_url, source_engine,
			target_engine, query, image, result_url
		FROM history ORDER BY id DESC`+s.db.Dialect().Limit(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
			trigger string
			image   int
		)
		if err := rows.Scan(&e.ID, &created, &trigger, &e.SourceURL, &e.SourceEngine,
			&e.TargetEngine, &e.Query, &image, &e.ResultURL); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		e.Trigger = Trigger(trigger)
		e.Image = image != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.Exec(ctx, "DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

// Nop discards entries.
type Nop struct{}

func (Nop) Record(context.Context, *Entry) error { return nil }
