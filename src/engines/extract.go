package engines

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// queryParams lists the parameter names Extract looks for, most common
// first. The first name present with a non-empty value wins, so order is
// part of the contract. It must cover every registry QueryParam plus any
// parameter an image template uses instead.
var queryParams = []string{
	"q",            // google, bing, duckduckgo, brave, reddit, github, ...
	"search_query", // youtube
	"k",            // amazon
	"search",       // wikipedia, gitlab
	"text",         // yandex
	"wd",           // baidu
	"_nkw",         // ebay
	"SearchText",   // aliexpress
	"query",        // archive
	"i",            // wolframalpha
	"keywords",     // linkedin
	"word",         // baidu images
}

const pathSearchMarker = "open.spotify.com/search/"

// Extract returns the plain-text query carried by a results-page URL. It
// returns false when no known parameter is present or the value is not
// valid percent-encoding.
func Extract(rawURL string) (string, bool) {
	// A path-style URL never falls through to the parameter table, even
	// when its segment is empty.
	if i := strings.Index(rawURL, pathSearchMarker); i >= 0 {
		return extractPathSegment(rawURL[i+len(pathSearchMarker):])
	}

	values, ok := rawQueryValues(rawURL)
	if !ok {
		return "", false
	}
	for _, name := range queryParams {
		raw, found := values[name]
		if !found {
			continue
		}
		return decodeFormValue(raw)
	}
	return "", false
}

// extractPathSegment decodes the first path segment of rest.
func extractPathSegment(rest string) (string, bool) {
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	s, err := url.PathUnescape(rest)
	if err != nil || !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// rawQueryValues splits the query string of rawURL into undecoded values.
// Only the first non-empty occurrence of each name is kept.
func rawQueryValues(rawURL string) (map[string]string, bool) {
	q := strings.IndexByte(rawURL, '?')
	if q < 0 {
		return nil, false
	}
	query := rawURL[q+1:]
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[:i]
	}

	values := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		if _, seen := values[name]; !seen {
			values[name] = value
		}
	}
	return values, len(values) > 0
}

// decodeFormValue applies the form convention ("+" is a space) and then
// percent-decodes.
func decodeFormValue(raw string) (string, bool) {
	s, err := url.PathUnescape(strings.ReplaceAll(raw, "+", " "))
	if err != nil || !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}
