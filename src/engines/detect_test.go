package engines

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://www.google.com/search?q=x", "google", true},
		{"https://scholar.google.com/scholar?q=x", "scholar", true},
		{"https://search.brave.com/search?q=x", "brave", true},
		{"https://duckduckgo.com/?q=x&ia=web", "duckduckgo", true},
		{"https://www.bing.com/images/search?q=x", "bing", true},
		{"https://www.amazon.co.uk/s?k=x", "amazon", true},
		{"https://www.youtube.com/results?search_query=x", "youtube", true},
		{"https://en.wikipedia.org/w/index.php?search=x", "wikipedia", true},
		{"https://open.spotify.com/search/x", "spotify", true},
		{"https://you.com/search?q=x", "you", true},
		{"https://not-a-search-engine.example/", "", false},
		{"https://www.youtube.com/watch?v=abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := Detect(tt.url)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Detect(%q) = %q, %v; want %q, %v", tt.url, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDetectBuiltURLs(t *testing.T) {
	for _, d := range All() {
		for _, image := range []bool{false, true} {
			u, _ := Build(d.ID, "x", image, Domains{})
			if got, ok := Detect(u); !ok || got != d.ID {
				t.Errorf("Detect(%q) = %q, %v; want %q", u, got, ok, d.ID)
			}
		}
	}
}

// The scan is first-match, so a general pattern listed before a specific one
// would swallow the specific engine's URLs.
func TestDetectPrecedence(t *testing.T) {
	general := Definition{ID: "general", DetectionPattern: "google.com"}
	specific := Definition{ID: "specific", DetectionPattern: "scholar.google.com"}
	u := "https://scholar.google.com/scholar?q=x"

	if got, _ := detectIn([]Definition{specific, general}, u); got != "specific" {
		t.Errorf("specific first: got %q, want specific", got)
	}
	if got, _ := detectIn([]Definition{general, specific}, u); got != "general" {
		t.Errorf("general first: got %q, want general (first match wins)", got)
	}
}
