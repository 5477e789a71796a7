package engines

import "testing"

func TestIsImageSearch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.google.com/search?q=cats&tbm=isch", true},
		{"https://www.bing.com/images/search?q=cats", true},
		{"https://duckduckgo.com/?q=cats&iax=images&ia=images", true},
		{"https://search.brave.com/images?q=cats", true},
		{"https://yandex.com/images/search?text=cats", true},
		{"https://www.qwant.com/?q=cats&t=images", true},
		{"https://image.baidu.com/search/index?tn=baiduimage&word=cats", true},
		{"https://www.google.com/search?q=cats", false},
		{"https://duckduckgo.com/?q=cats", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImageSearch(tt.url); got != tt.want {
			t.Errorf("IsImageSearch(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

// Known limitation: an unencoded indicator inside the query value itself
// classifies the page as an image search.
func TestIsImageSearchQueryFalsePositive(t *testing.T) {
	if !IsImageSearch("https://www.google.com/search?q=tbm=isch") {
		t.Error("substring heuristic should match inside the query value")
	}
	// Build encodes "=" so its own output does not trip it.
	u, _ := Build("google", "tbm=isch", false, Domains{})
	if IsImageSearch(u) {
		t.Errorf("IsImageSearch(%q) = true, want false", u)
	}
}
