package engines

// DomainKind tags an engine whose URL template takes a regional {domain}.
type DomainKind string

const (
	DomainAmazon  DomainKind = "amazon"
	DomainYouTube DomainKind = "youtube"
)

// Closed whitelists. A stored domain outside these sets is never substituted
// into a template.
var (
	amazonDomains  = []string{"es", "com", "co.uk", "de", "fr", "it"}
	youtubeDomains = []string{"com", "es"}
)

var defaultDomains = map[DomainKind]string{
	DomainAmazon:  "es",
	DomainYouTube: "com",
}

// Domains carries the user's regional choices into Build. Zero values fall
// back to each kind's default.
type Domains struct {
	Amazon  string
	YouTube string
}

// For returns the configured value for kind, unvalidated.
func (d Domains) For(kind DomainKind) string {
	switch kind {
	case DomainAmazon:
		return d.Amazon
	case DomainYouTube:
		return d.YouTube
	}
	return ""
}

// AllowedDomains returns a copy of the whitelist for kind, or nil for an
// unknown kind.
func AllowedDomains(kind DomainKind) []string {
	switch kind {
	case DomainAmazon:
		return append([]string(nil), amazonDomains...)
	case DomainYouTube:
		return append([]string(nil), youtubeDomains...)
	}
	return nil
}

// DefaultDomain returns the fallback domain for kind.
func DefaultDomain(kind DomainKind) string {
	return defaultDomains[kind]
}

// IsValidDomain reports whether value is whitelisted for kind. Unknown kinds
// accept nothing.
func IsValidDomain(kind DomainKind, value string) bool {
	var allowed []string
	switch kind {
	case DomainAmazon:
		allowed = amazonDomains
	case DomainYouTube:
		allowed = youtubeDomains
	default:
		return false
	}
	for _, d := range allowed {
		if d == value {
			return true
		}
	}
	return false
}

// DomainOrDefault returns value when it is whitelisted for kind and the
// kind's default otherwise.
func DomainOrDefault(kind DomainKind, value string) string {
	if IsValidDomain(kind, value) {
		return value
	}
	return DefaultDomain(kind)
}
