package action

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

type fakeNavigator struct{ opened []string }

func (f *fakeNavigator) Open(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		in      string
		want    Destination
		wantErr bool
	}{
		{"print", DestPrint, false},
		{"OPEN", DestOpen, false},
		{" copy ", DestCopy, false},
		{"", DestPrint, false},
		{"email", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDestination(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDestination(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestBrowserCommand(t *testing.T) {
	u := "https://www.bing.com/search?q=a&b=c"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{"darwin", "open", []string{u}, false},
		{"linux", "xdg-open", []string{u}, false},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", u}, false},
		{"plan9", "", nil, true},
	}
	for _, tt := range tests {
		name, args, err := browserCommand(tt.goos, u)
		if (err != nil) != tt.wantErr {
			t.Errorf("browserCommand(%q) error = %v", tt.goos, err)
			continue
		}
		if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
			t.Errorf("browserCommand(%q) = %q %v, want %q %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
	}
}

func TestBrowserOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	b := &Browser{goos: "linux", start: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}

	if err := b.Open("https://example.com"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if gotName != "xdg-open" || len(gotArgs) != 1 || gotArgs[0] != "https://example.com" {
		t.Errorf("started %q %v", gotName, gotArgs)
	}

	b.start = func(string, ...string) error { return errors.New("not found") }
	if err := b.Open("https://example.com"); err == nil {
		t.Error("Open() should report start failures")
	}
}

func TestDispatcherDeliver(t *testing.T) {
	var out bytes.Buffer
	nav := &fakeNavigator{}
	clip := &fakeClipboard{}
	d := &Dispatcher{Out: &out, Navigator: nav, Clipboard: clip}
	u := "https://duckduckgo.com/?q=cats"

	if err := d.Deliver(DestPrint, u); err != nil {
		t.Fatal(err)
	}
	if out.String() != u+"\n" {
		t.Errorf("printed %q", out.String())
	}

	if err := d.Deliver(DestOpen, u); err != nil {
		t.Fatal(err)
	}
	if len(nav.opened) != 1 || nav.opened[0] != u {
		t.Errorf("opened %v", nav.opened)
	}

	if err := d.Deliver(DestCopy, u); err != nil {
		t.Fatal(err)
	}
	if clip.text != u {
		t.Errorf("copied %q", clip.text)
	}

	clip.err = errors.New("no display")
	if err := d.Deliver(DestCopy, u); err == nil {
		t.Error("Deliver(copy) should surface clipboard errors")
	}

	if err := d.Deliver("fax", u); err == nil {
		t.Error("Deliver(fax) should fail")
	}
}
