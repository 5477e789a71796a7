package engines

import (
	"net/url"
	"strings"
)

// EncodeQuery percent-encodes s as a single URL component. Every reserved
// character is escaped and spaces become %20, so the result is safe in both
// a query value and a path segment.
func EncodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Build returns the search URL for engine id and a plain-text query. The image
// template is used only when image is set and the engine defines one. It
// returns false when id is not registered.
func Build(id, query string, image bool, domains Domains) (string, bool) {
	i, ok := byID[id]
	if !ok {
		return "", false
	}
	def := registry[i]

	template := def.SearchURL
	if image && def.ImageSearchURL != "" {
		template = def.ImageSearchURL
	}

	// Domain before query so user text is never rescanned for placeholders.
	if def.UsesDomain != "" {
		domain := DomainOrDefault(def.UsesDomain, domains.For(def.UsesDomain))
		template = strings.Replace(template, DomainPlaceholder, domain, 1)
	}

	return strings.Replace(template, QueryPlaceholder, EncodeQuery(query), 1), true
}
