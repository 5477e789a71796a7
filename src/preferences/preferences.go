// Package preferences holds the user's engine configuration: regional
// domains, the quick-search default, button order and visibility.
package preferences

import (
	"encoding/json"
	"strings"

	"github.com/apimgr/searchconv/src/engines"
)

// StorageKey is the well-known key the preferences blob is stored under.
const StorageKey = "searchEngineConverterConfig"

// FallbackEngine is used when no valid default engine is configured.
const FallbackEngine = "google"

// MaxShortcut is the highest numbered quick-access slot.
const MaxShortcut = 9

// Preferences is the persisted configuration record. Its JSON shape is the
// stored blob format.
type Preferences struct {
	AmazonDomain        string          `json:"amazonDomain" yaml:"amazon_domain"`
	YoutubeDomain       string          `json:"youtubeDomain" yaml:"youtube_domain"`
	DefaultSearchEngine string          `json:"defaultSearchEngine" yaml:"default_search_engine"`
	ButtonOrder         []string        `json:"buttonOrder" yaml:"button_order"`
	VisibleEngines      map[string]bool `json:"visibleEngines" yaml:"visible_engines"`
}

// Default returns the preferences used before anything is saved.
func Default() *Preferences {
	return &Preferences{
		AmazonDomain:        engines.DefaultDomain(engines.DomainAmazon),
		YoutubeDomain:       engines.DefaultDomain(engines.DomainYouTube),
		DefaultSearchEngine: FallbackEngine,
		ButtonOrder:         []string{},
		VisibleEngines:      engines.DefaultVisibility(),
	}
}

// Decode parses a stored blob over the defaults, so fields missing from the
// blob keep their default values. The result is sanitized.
func Decode(data []byte) (*Preferences, []string, error) {
	p := Default()
	if err := json.Unmarshal(data, p); err != nil {
		return Default(), nil, err
	}
	fixes := p.Sanitize()
	return p, fixes, nil
}

// Encode serializes preferences to the stored blob format.
func (p *Preferences) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Clone returns a deep copy.
func (p *Preferences) Clone() *Preferences {
	c := *p
	c.ButtonOrder = append([]string(nil), p.ButtonOrder...)
	if p.VisibleEngines != nil {
		c.VisibleEngines = make(map[string]bool, len(p.VisibleEngines))
		for k, v := range p.VisibleEngines {
			c.VisibleEngines[k] = v
		}
	}
	return &c
}

// NormalizeEngineID maps legacy button ids such as "googleButton" to engine
// ids. The result is not checked against the registry.
func NormalizeEngineID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimSuffix(id, "Button")
	return strings.ToLower(id)
}

// Sanitize coerces every field to a value the builder can trust and
// returns a description of each correction made.
func (p *Preferences) Sanitize() []string {
	var fixes []string

	if !engines.IsValidDomain(engines.DomainAmazon, p.AmazonDomain) {
		fixes = append(fixes, "amazonDomain "+quote(p.AmazonDomain)+" not allowed")
		p.AmazonDomain = engines.DefaultDomain(engines.DomainAmazon)
	}
	if !engines.IsValidDomain(engines.DomainYouTube, p.YoutubeDomain) {
		fixes = append(fixes, "youtubeDomain "+quote(p.YoutubeDomain)+" not allowed")
		p.YoutubeDomain = engines.DefaultDomain(engines.DomainYouTube)
	}

	if id := NormalizeEngineID(p.DefaultSearchEngine); engines.Exists(id) {
		p.DefaultSearchEngine = id
	} else {
		fixes = append(fixes, "defaultSearchEngine "+quote(p.DefaultSearchEngine)+" unknown")
		p.DefaultSearchEngine = FallbackEngine
	}

	order := make([]string, 0, len(p.ButtonOrder))
	seen := make(map[string]bool)
	for _, raw := range p.ButtonOrder {
		id := NormalizeEngineID(raw)
		if !engines.Exists(id) || seen[id] {
			fixes = append(fixes, "buttonOrder entry "+quote(raw)+" dropped")
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	p.ButtonOrder = order

	visible := make(map[string]bool, len(p.VisibleEngines))
	for raw, v := range p.VisibleEngines {
		id := NormalizeEngineID(raw)
		if !engines.Exists(id) {
			fixes = append(fixes, "visibleEngines entry "+quote(raw)+" dropped")
			continue
		}
		visible[id] = v
	}
	p.VisibleEngines = visible

	return fixes
}

// Merge applies non-zero fields of updates. Visibility entries merge key by
// key. Call Sanitize afterwards.
func (p *Preferences) Merge(updates *Preferences) {
	if updates.AmazonDomain != "" {
		p.AmazonDomain = updates.AmazonDomain
	}
	if updates.YoutubeDomain != "" {
		p.YoutubeDomain = updates.YoutubeDomain
	}
	if updates.DefaultSearchEngine != "" {
		p.DefaultSearchEngine = updates.DefaultSearchEngine
	}
	if updates.ButtonOrder != nil {
		p.ButtonOrder = append([]string(nil), updates.ButtonOrder...)
	}
	if len(updates.VisibleEngines) > 0 && p.VisibleEngines == nil {
		p.VisibleEngines = make(map[string]bool)
	}
	for k, v := range updates.VisibleEngines {
		p.VisibleEngines[k] = v
	}
}

// Domains returns the regional domain values for the builder.
func (p *Preferences) Domains() engines.Domains {
	return engines.Domains{Amazon: p.AmazonDomain, YouTube: p.YoutubeDomain}
}

// DefaultEngine returns the configured quick-search engine, or the fallback
// when it is not registered.
func (p *Preferences) DefaultEngine() string {
	if id := NormalizeEngineID(p.DefaultSearchEngine); engines.Exists(id) {
		return id
	}
	return FallbackEngine
}

// IsVisible reports whether an engine is shown. Engines without an explicit
// entry use the registry default.
func (p *Preferences) IsVisible(id string) bool {
	if v, ok := p.VisibleEngines[id]; ok {
		return v
	}
	d, ok := engines.Lookup(id)
	return ok && d.VisibleByDefault
}

// Ordered returns the visible engine ids: ButtonOrder entries first, then
// the remaining visible engines in registry order.
func (p *Preferences) Ordered() []string {
	var ids []string
	placed := make(map[string]bool)

	for _, raw := range p.ButtonOrder {
		id := NormalizeEngineID(raw)
		if placed[id] || !engines.Exists(id) || !p.IsVisible(id) {
			continue
		}
		placed[id] = true
		ids = append(ids, id)
	}
	for _, id := range engines.IDs() {
		if !placed[id] && p.IsVisible(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Shortcut returns the engine in quick-access slot n (1-based).
func (p *Preferences) Shortcut(n int) (string, bool) {
	if n < 1 || n > MaxShortcut {
		return "", false
	}
	ordered := p.Ordered()
	if n > len(ordered) {
		return "", false
	}
	return ordered[n-1], true
}

func quote(s string) string {
	return `"` + s + `"`
}
