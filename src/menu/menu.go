// Package menu describes the "search selected text with..." menu and maps
// clicked item ids back to engines.
package menu

import (
	"fmt"
	"strings"

	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/model"
)

const (
	// RootID is the id of the parent entry.
	RootID = "searchEngineConverter"
	// ItemPrefix precedes the engine id in every child item id.
	ItemPrefix = "search_"
	// RootTitle is shown for the parent entry; %s is the selected text.
	RootTitle = `Search "%s" with...`
)

// Item is one menu entry.
type Item struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Title    string `json:"title"`
	EngineID string `json:"engine,omitempty"`
}

// ItemID returns the menu item id for an engine.
func ItemID(engineID string) string {
	return ItemPrefix + engineID
}

// Items returns the parent entry followed by one child per context-menu
// engine, in registry order.
func Items() []Item {
	defs := engines.ContextMenu()
	items := make([]Item, 0, len(defs)+1)
	items = append(items, Item{ID: RootID, Title: RootTitle})
	for _, d := range defs {
		items = append(items, Item{
			ID:       ItemID(d.ID),
			ParentID: RootID,
			Title:    d.Name,
			EngineID: d.ID,
		})
	}
	return items
}

// ParseItemID returns the engine id for a clicked item.
func ParseItemID(id string) (string, error) {
	engineID, ok := strings.CutPrefix(id, ItemPrefix)
	if !ok || engineID == "" {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidItem, id)
	}
	if !engines.Exists(engineID) {
		return "", fmt.Errorf("%w: %q", model.ErrEngineNotFound, engineID)
	}
	return engineID, nil
}

// Title renders the parent entry title for a selection.
func Title(selection string) string {
	return fmt.Sprintf(RootTitle, strings.TrimSpace(selection))
}
