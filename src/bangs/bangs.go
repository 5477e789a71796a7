// Package bangs resolves "!shortcut" prefixes and suffixes in quick-search
// input to registry engine ids.
package bangs

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/apimgr/searchconv/src/engines"
)

// Bang maps a shortcut to a registered engine.
type Bang struct {
	Shortcut string   `json:"shortcut" yaml:"shortcut" mapstructure:"shortcut"`
	EngineID string   `json:"engine" yaml:"engine" mapstructure:"engine"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty" mapstructure:"aliases"`
}

// Result is the outcome of parsing quick-search input.
type Result struct {
	Bang       *Bang
	Query      string
	IsBangOnly bool // Input was just the bang with no search terms
}

// Manager resolves bangs from the registry and from configuration.
type Manager struct {
	mu       sync.RWMutex
	builtins map[string]*Bang
	custom   map[string]*Bang
}

// NewManager creates a manager whose built-in bangs are every engine id and
// its registry aliases.
func NewManager() *Manager {
	m := &Manager{
		builtins: make(map[string]*Bang),
		custom:   make(map[string]*Bang),
	}

	for _, d := range engines.All() {
		b := &Bang{Shortcut: d.ID, EngineID: d.ID, Aliases: d.Aliases}
		m.builtins[strings.ToLower(b.Shortcut)] = b
		for _, alias := range b.Aliases {
			m.builtins[strings.ToLower(alias)] = b
		}
	}

	return m
}

// SetCustomBangs replaces the configured bangs. Bangs pointing at an
// unregistered engine are dropped and their shortcuts returned.
func (m *Manager) SetCustomBangs(bangs []*Bang) (rejected []string) {
	custom := make(map[string]*Bang)
	for _, b := range bangs {
		if b == nil || b.Shortcut == "" || !engines.Exists(b.EngineID) {
			if b != nil {
				rejected = append(rejected, b.Shortcut)
			}
			continue
		}
		custom[strings.ToLower(b.Shortcut)] = b
		for _, alias := range b.Aliases {
			custom[strings.ToLower(alias)] = b
		}
	}

	m.mu.Lock()
	m.custom = custom
	m.mu.Unlock()
	return rejected
}

// Parse parses a query for bang commands
// Returns nil if no bang found
func (m *Manager) Parse(query string) *Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// Check for bang at start: !g query
	if strings.HasPrefix(query, "!") {
		return m.parseBangPrefix(query)
	}

	// Check for bang at end: query !g
	if idx := strings.LastIndex(query, " !"); idx > 0 {
		return m.parseBangSuffix(query, idx)
	}

	return nil
}

// parseBangPrefix handles "!g query" format
func (m *Manager) parseBangPrefix(query string) *Result {
	parts := strings.SplitN(query[1:], " ", 2)

	bang := m.Lookup(parts[0])
	if bang == nil {
		return nil
	}

	searchQuery := ""
	if len(parts) > 1 {
		searchQuery = strings.TrimSpace(parts[1])
	}

	return &Result{
		Bang:       bang,
		Query:      searchQuery,
		IsBangOnly: searchQuery == "",
	}
}

// parseBangSuffix handles "query !g" and "query !g more terms"
func (m *Manager) parseBangSuffix(query string, idx int) *Result {
	searchQuery := strings.TrimSpace(query[:idx])
	parts := strings.SplitN(query[idx+2:], " ", 2)

	bang := m.Lookup(parts[0])
	if bang == nil {
		return nil
	}

	if len(parts) > 1 {
		if rest := strings.TrimSpace(parts[1]); rest != "" {
			searchQuery = strings.TrimSpace(searchQuery + " " + rest)
		}
	}

	return &Result{
		Bang:       bang,
		Query:      searchQuery,
		IsBangOnly: searchQuery == "",
	}
}

// Lookup finds a bang by shortcut, custom bangs first.
func (m *Manager) Lookup(shortcut string) *Bang {
	shortcut = strings.ToLower(shortcut)
	if shortcut == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if b, ok := m.custom[shortcut]; ok {
		return b
	}
	if b, ok := m.builtins[shortcut]; ok {
		return b
	}
	return nil
}

// GetAll returns all bangs, custom first, each listed once and sorted by
// shortcut within its group.
func (m *Manager) GetAll() []*Bang {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[*Bang]bool)
	var result []*Bang
	for _, group := range []map[string]*Bang{m.custom, m.builtins} {
		var batch []*Bang
		for _, b := range group {
			if !seen[b] {
				seen[b] = true
				batch = append(batch, b)
			}
		}
		sort.Slice(batch, func(i, j int) bool { return batch[i].Shortcut < batch[j].Shortcut })
		result = append(result, batch...)
	}
	return result
}

// bangPattern matches bang syntax
var bangPattern = regexp.MustCompile(`(?:^!(\w+)|\s!(\w+)(?:\s|$))`)

// ExtractBang extracts just the bang shortcut without resolving it
func ExtractBang(query string) string {
	matches := bangPattern.FindStringSubmatch(query)
	if len(matches) > 1 {
		for _, m := range matches[1:] {
			if m != "" {
				return m
			}
		}
	}
	return ""
}
