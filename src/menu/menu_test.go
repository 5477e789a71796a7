package menu

import (
	"errors"
	"testing"

	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/model"
)

func TestItems(t *testing.T) {
	items := Items()
	if len(items) != len(engines.ContextMenu())+1 {
		t.Fatalf("len(Items()) = %d, want %d", len(items), len(engines.ContextMenu())+1)
	}
	if items[0].ID != RootID || items[0].ParentID != "" {
		t.Errorf("first item = %+v, want root", items[0])
	}

	for _, it := range items[1:] {
		if it.ParentID != RootID {
			t.Errorf("item %q ParentID = %q", it.ID, it.ParentID)
		}
		d, ok := engines.Lookup(it.EngineID)
		if !ok || !d.ShowInContextMenu {
			t.Errorf("item %q refers to %q which is not a context-menu engine", it.ID, it.EngineID)
		}
		if it.Title != d.Name {
			t.Errorf("item %q Title = %q, want %q", it.ID, it.Title, d.Name)
		}
		got, err := ParseItemID(it.ID)
		if err != nil || got != it.EngineID {
			t.Errorf("ParseItemID(%q) = %q, %v", it.ID, got, err)
		}
	}
}

func TestParseItemID(t *testing.T) {
	tests := []struct {
		id      string
		want    string
		wantErr error
	}{
		{"search_google", "google", nil},
		{"search_duckduckgo", "duckduckgo", nil},
		{"search_altavista", "", model.ErrEngineNotFound},
		{"search_", "", model.ErrInvalidItem},
		{RootID, "", model.ErrInvalidItem},
		{"google", "", model.ErrInvalidItem},
		{"", "", model.ErrInvalidItem},
	}

	for _, tt := range tests {
		got, err := ParseItemID(tt.id)
		if got != tt.want || !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseItemID(%q) = %q, %v; want %q, %v", tt.id, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("  golang generics "); got != `Search "golang generics" with...` {
		t.Errorf("Title() = %q", got)
	}
}
