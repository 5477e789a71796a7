package engines

import "testing"

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		kind  DomainKind
		value string
		want  bool
	}{
		{DomainAmazon, "es", true},
		{DomainAmazon, "com", true},
		{DomainAmazon, "co.uk", true},
		{DomainAmazon, "de", true},
		{DomainAmazon, "fr", true},
		{DomainAmazon, "it", true},
		{DomainAmazon, "xx", false},
		{DomainAmazon, "", false},
		{DomainAmazon, "DE", false},
		{DomainAmazon, "de/", false},
		{DomainYouTube, "com", true},
		{DomainYouTube, "es", true},
		{DomainYouTube, "de", false},
		{DomainKind("ebay"), "com", false},
		{DomainKind(""), "com", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.value, func(t *testing.T) {
			if got := IsValidDomain(tt.kind, tt.value); got != tt.want {
				t.Errorf("IsValidDomain(%q, %q) = %v, want %v", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}

func TestDomainOrDefault(t *testing.T) {
	if got := DomainOrDefault(DomainAmazon, "fr"); got != "fr" {
		t.Errorf("DomainOrDefault(amazon, fr) = %q", got)
	}
	if got := DomainOrDefault(DomainAmazon, "xx"); got != "es" {
		t.Errorf("DomainOrDefault(amazon, xx) = %q, want es", got)
	}
	if got := DomainOrDefault(DomainYouTube, ""); got != "com" {
		t.Errorf("DomainOrDefault(youtube, \"\") = %q, want com", got)
	}
}

func TestAllowedDomainsCopy(t *testing.T) {
	list := AllowedDomains(DomainAmazon)
	if len(list) != 6 {
		t.Fatalf("len = %d, want 6", len(list))
	}
	list[0] = "evil"
	if IsValidDomain(DomainAmazon, "evil") {
		t.Error("AllowedDomains must return a copy")
	}
	if AllowedDomains(DomainKind("nope")) != nil {
		t.Error("unknown kind should return nil")
	}
}

func TestDomainsFor(t *testing.T) {
	d := Domains{Amazon: "de", YouTube: "es"}
	if d.For(DomainAmazon) != "de" || d.For(DomainYouTube) != "es" || d.For("x") != "" {
		t.Errorf("Domains.For returned unexpected values for %+v", d)
	}
}
