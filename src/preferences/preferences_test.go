package preferences

import (
	"reflect"
	"strings"
	"testing"

	"github.com/apimgr/searchconv/src/engines"
)

var defaultOrder = []string{"google", "brave", "duckduckgo", "bing", "amazon", "youtube", "wikipedia", "twitter"}

func TestDefault(t *testing.T) {
	p := Default()
	if p.AmazonDomain != "es" {
		t.Errorf("AmazonDomain = %q, want es", p.AmazonDomain)
	}
	if p.YoutubeDomain != "com" {
		t.Errorf("YoutubeDomain = %q, want com", p.YoutubeDomain)
	}
	if p.DefaultSearchEngine != "google" {
		t.Errorf("DefaultSearchEngine = %q, want google", p.DefaultSearchEngine)
	}
	if len(p.VisibleEngines) != engines.Count() {
		t.Errorf("VisibleEngines has %d entries, want %d", len(p.VisibleEngines), engines.Count())
	}
	if fixes := p.Sanitize(); len(fixes) != 0 {
		t.Errorf("defaults needed fixes: %v", fixes)
	}
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	p, fixes, err := Decode([]byte(`{"amazonDomain":"de"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(fixes) != 0 {
		t.Errorf("fixes = %v, want none", fixes)
	}
	if p.AmazonDomain != "de" {
		t.Errorf("AmazonDomain = %q, want de", p.AmazonDomain)
	}
	if p.YoutubeDomain != "com" || p.DefaultSearchEngine != "google" {
		t.Errorf("missing fields should keep defaults, got %+v", p)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	p, _, err := Decode([]byte(`{"amazonDomain":`))
	if err == nil {
		t.Fatal("Decode() of truncated JSON should fail")
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Errorf("corrupt blob should yield defaults, got %+v", p)
	}
}

func TestDecodeCoercesTamperedValues(t *testing.T) {
	blob := `{
		"amazonDomain": "evil.example/",
		"youtubeDomain": "de",
		"defaultSearchEngine": "duckduckgoButton",
		"buttonOrder": ["bingButton", "nope", "google", "bing"],
		"visibleEngines": {"githubButton": true, "altavista": true, "google": false}
	}`

	p, fixes, err := Decode([]byte(blob))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if p.AmazonDomain != "es" {
		t.Errorf("AmazonDomain = %q, want es", p.AmazonDomain)
	}
	if p.YoutubeDomain != "com" {
		t.Errorf("YoutubeDomain = %q, want com", p.YoutubeDomain)
	}
	if p.DefaultSearchEngine != "duckduckgo" {
		t.Errorf("DefaultSearchEngine = %q, want duckduckgo", p.DefaultSearchEngine)
	}
	if want := []string{"bing", "google"}; !reflect.DeepEqual(p.ButtonOrder, want) {
		t.Errorf("ButtonOrder = %v, want %v", p.ButtonOrder, want)
	}
	if !p.VisibleEngines["github"] || p.VisibleEngines["google"] {
		t.Errorf("VisibleEngines = %v", p.VisibleEngines)
	}
	if _, ok := p.VisibleEngines["altavista"]; ok {
		t.Error("unknown engine should be dropped from VisibleEngines")
	}
	// amazon, youtube, "nope", duplicate "bing", "altavista"
	if len(fixes) != 5 {
		t.Errorf("fixes = %d %v, want 5", len(fixes), fixes)
	}
}

func TestNormalizeEngineID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"googleButton", "google"},
		{"google", "google"},
		{" YouTube ", "youtube"},
		{"wolframalphaButton", "wolframalpha"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeEngineID(tt.in); got != tt.want {
			t.Errorf("NormalizeEngineID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultEngine(t *testing.T) {
	p := Default()
	p.DefaultSearchEngine = "bingButton"
	if got := p.DefaultEngine(); got != "bing" {
		t.Errorf("DefaultEngine() = %q, want bing", got)
	}
	p.DefaultSearchEngine = "altavista"
	if got := p.DefaultEngine(); got != FallbackEngine {
		t.Errorf("DefaultEngine() = %q, want %q", got, FallbackEngine)
	}
}

func TestOrdered(t *testing.T) {
	tests := []struct {
		name    string
		order   []string
		visible map[string]bool
		want    []string
	}{
		{"defaults", nil, nil, defaultOrder},
		{
			"custom order first",
			[]string{"youtube", "google"},
			nil,
			[]string{"youtube", "google", "brave", "duckduckgo", "bing", "amazon", "wikipedia", "twitter"},
		},
		{
			"hidden engines skipped",
			[]string{"github", "google"},
			map[string]bool{"google": false, "github": true},
			[]string{"github", "brave", "duckduckgo", "bing", "amazon", "youtube", "wikipedia", "twitter"},
		},
		{
			"legacy and unknown ids",
			[]string{"bingButton", "altavista", "bing"},
			nil,
			[]string{"bing", "google", "brave", "duckduckgo", "amazon", "youtube", "wikipedia", "twitter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Preferences{ButtonOrder: tt.order, VisibleEngines: tt.visible}
			if got := p.Ordered(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ordered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortcut(t *testing.T) {
	p := Default()
	p.ButtonOrder = []string{"wikipedia"}

	tests := []struct {
		n      int
		want   string
		wantOK bool
	}{
		{1, "wikipedia", true},
		{2, "google", true},
		{8, "twitter", true},
		{9, "", false}, // only eight visible
		{0, "", false},
		{10, "", false},
	}
	for _, tt := range tests {
		got, ok := p.Shortcut(tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Shortcut(%d) = %q, %v; want %q, %v", tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMerge(t *testing.T) {
	p := Default()
	p.Merge(&Preferences{
		AmazonDomain:   "fr",
		ButtonOrder:    []string{"bing"},
		VisibleEngines: map[string]bool{"github": true},
	})

	if p.AmazonDomain != "fr" {
		t.Errorf("AmazonDomain = %q", p.AmazonDomain)
	}
	if p.YoutubeDomain != "com" {
		t.Errorf("unset field changed: YoutubeDomain = %q", p.YoutubeDomain)
	}
	if !reflect.DeepEqual(p.ButtonOrder, []string{"bing"}) {
		t.Errorf("ButtonOrder = %v", p.ButtonOrder)
	}
	if !p.VisibleEngines["github"] || !p.VisibleEngines["google"] {
		t.Errorf("VisibleEngines should merge key by key: %v", p.VisibleEngines)
	}

	// An empty, non-nil order clears it.
	p.Merge(&Preferences{ButtonOrder: []string{}})
	if len(p.ButtonOrder) != 0 {
		t.Errorf("ButtonOrder = %v, want empty", p.ButtonOrder)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	p.ButtonOrder = []string{"google"}
	c := p.Clone()
	c.ButtonOrder[0] = "bing"
	c.VisibleEngines["google"] = false

	if p.ButtonOrder[0] != "google" || !p.VisibleEngines["google"] {
		t.Error("Clone shares state with the original")
	}
}

func TestDomains(t *testing.T) {
	p := &Preferences{AmazonDomain: "de", YoutubeDomain: "es"}
	want := engines.Domains{Amazon: "de", YouTube: "es"}
	if got := p.Domains(); got != want {
		t.Errorf("Domains() = %+v, want %+v", got, want)
	}
}

func TestEncodeFieldNames(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"amazonDomain", "youtubeDomain", "defaultSearchEngine", "buttonOrder", "visibleEngines"} {
		if !strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("encoded blob missing %q: %s", field, data)
		}
	}
}
