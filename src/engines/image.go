package engines

import "strings"

// imageIndicators are fragments that mark a results page as an image search.
// Matching is a plain substring test over the whole URL, so a query that
// literally contains one of them is classified as an image search too.
var imageIndicators = []string{
	"tbm=isch",
	"/images",
	"iax=images",
	"images/search",
	"t=images",
	"tn=baiduimage",
}

// IsImageSearch reports whether rawURL looks like an image search.
func IsImageSearch(rawURL string) bool {
	for _, ind := range imageIndicators {
		if strings.Contains(rawURL, ind) {
			return true
		}
	}
	return false
}
