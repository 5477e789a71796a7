package engines

import "strings"

// Detect returns the id of the first engine, in registry order, whose
// DetectionPattern occurs anywhere in rawURL.
func Detect(rawURL string) (string, bool) {
	return detectIn(registry, rawURL)
}

func detectIn(defs []Definition, rawURL string) (string, bool) {
	for _, d := range defs {
		if strings.Contains(rawURL, d.DetectionPattern) {
			return d.ID, true
		}
	}
	return "", false
}
