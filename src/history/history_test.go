package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apimgr/searchconv/src/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenAndMigrate(context.Background(), &database.Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "history.db"),
	})
	if err != nil {
		t.Fatalf("OpenAndMigrate() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestRecordFillsIDAndTime(t *testing.T) {
	s := newTestStore(t)
	e := &Entry{
		Trigger:      TriggerConvert,
		SourceURL:    "https://www.google.com/search?q=cats",
		SourceEngine: "google",
		TargetEngine: "bing",
		Query:        "cats",
		ResultURL:    "https://www.bing.com/search?q=cats",
	}

	if err := s.Record(context.Background(), e); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if !strings.HasPrefix(e.ID, "conv_") || len(e.ID) != len("conv_")+26 {
		t.Errorf("ID = %q, want conv_<ulid>", e.ID)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	queries := []string{"first", "second", "third"}
	for i, q := range queries {
		err := s.Record(ctx, &Entry{
			Trigger:      TriggerSearch,
			TargetEngine: "google",
			Query:        q,
			Image:        i == 1,
			ResultURL:    "https://www.google.com/search?q=" + q,
		})
		if err != nil {
			t.Fatalf("Record(%q) error = %v", q, err)
		}
	}

	entries, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Query != "third" || entries[2].Query != "first" {
		t.Errorf("order = %q, %q, %q; want newest first", entries[0].Query, entries[1].Query, entries[2].Query)
	}
	if !entries[1].Image || entries[0].Image {
		t.Error("Image flag not round-tripped")
	}
	if entries[0].Trigger != TriggerSearch {
		t.Errorf("Trigger = %q", entries[0].Trigger)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(List(2)) = %d", len(limited))
	}
}

func TestRecordKeepsGivenTime(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.Record(ctx, &Entry{CreatedAt: at, Trigger: TriggerAPI, TargetEngine: "bing", Query: "q", ResultURL: "u"})

	entries, _ := s.List(ctx, 0)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d", len(entries))
	}
	if !entries[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", entries[0].CreatedAt, at)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		s.Record(ctx, &Entry{Trigger: TriggerMenu, TargetEngine: "google", Query: "x", ResultURL: "u"})
	}

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := s.List(ctx, 10)
	if len(entries) != 0 {
		t.Errorf("len(entries) after Clear = %d", len(entries))
	}
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	if err := r.Record(context.Background(), &Entry{}); err != nil {
		t.Errorf("Nop.Record() error = %v", err)
	}
}
