// Package engines holds the search engine registry and the pure URL
// translation functions built on it: Build, Extract, Detect, IsImageSearch
// and the regional domain whitelist.
//
// Nothing in this package performs I/O or keeps mutable state. The registry
// and lookup tables are fixed at init, so every function is safe to call from
// any number of goroutines.
package engines

// Placeholders substituted into URL templates.
const (
	QueryPlaceholder  = "{query}"
	DomainPlaceholder = "{domain}"
)

// Definition describes one supported search engine.
type Definition struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// SearchURL contains exactly one {query} and, for regional engines,
	// exactly one {domain}.
	SearchURL string `json:"search_url" yaml:"search_url"`
	// ImageSearchURL is empty when the engine has no image endpoint.
	ImageSearchURL string `json:"image_search_url,omitempty" yaml:"image_search_url,omitempty"`
	// QueryParam is empty for engines that put the query in the path.
	QueryParam       string     `json:"query_param,omitempty" yaml:"query_param,omitempty"`
	DetectionPattern string     `json:"detection_pattern" yaml:"detection_pattern"`
	UsesDomain       DomainKind `json:"uses_domain,omitempty" yaml:"uses_domain,omitempty"`

	VisibleByDefault  bool `json:"visible_by_default" yaml:"visible_by_default"`
	ShowInContextMenu bool `json:"show_in_context_menu" yaml:"show_in_context_menu"`
	HasCopyButton     bool `json:"has_copy_button" yaml:"has_copy_button"`

	// Aliases are extra bang shortcuts besides the id.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// SupportsImages reports whether the engine has a dedicated image endpoint.
func (d Definition) SupportsImages() bool {
	return d.ImageSearchURL != ""
}

// pathStyle reports whether the query is carried in the URL path.
func (d Definition) pathStyle() bool {
	return d.QueryParam == ""
}

func (d Definition) clone() Definition {
	if d.Aliases != nil {
		d.Aliases = append([]string(nil), d.Aliases...)
	}
	return d
}

var byID = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, d := range registry {
		m[d.ID] = i
	}
	return m
}()

// Lookup returns the engine with the given id.
func Lookup(id string) (Definition, bool) {
	i, ok := byID[id]
	if !ok {
		return Definition{}, false
	}
	return registry[i].clone(), true
}

// Exists reports whether id names a registered engine.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// All returns every engine in registry order.
func All() []Definition {
	out := make([]Definition, len(registry))
	for i, d := range registry {
		out[i] = d.clone()
	}
	return out
}

// IDs returns every engine id in registry order.
func IDs() []string {
	out := make([]string, len(registry))
	for i, d := range registry {
		out[i] = d.ID
	}
	return out
}

// Filter returns the engines for which keep returns true, in registry order.
func Filter(keep func(Definition) bool) []Definition {
	var out []Definition
	for _, d := range registry {
		if keep(d) {
			out = append(out, d.clone())
		}
	}
	return out
}

// ContextMenu returns the engines offered in the selection context menu.
func ContextMenu() []Definition {
	return Filter(func(d Definition) bool { return d.ShowInContextMenu })
}

// Copyable returns the engines that offer a copy-URL action.
func Copyable() []Definition {
	return Filter(func(d Definition) bool { return d.HasCopyButton })
}

// DefaultVisibility maps every engine id to its VisibleByDefault flag.
func DefaultVisibility() map[string]bool {
	m := make(map[string]bool, len(registry))
	for _, d := range registry {
		m[d.ID] = d.VisibleByDefault
	}
	return m
}

// Count returns the number of registered engines.
func Count() int {
	return len(registry)
}
