// Package action delivers a produced URL: print it, open it in the system
// browser, or copy it to the clipboard.
package action

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Destination selects where a URL goes.
type Destination string

const (
	DestPrint Destination = "print"
	DestOpen  Destination = "open"
	DestCopy  Destination = "copy"
)

// ParseDestination accepts print, open and copy (case-insensitive).
func ParseDestination(s string) (Destination, error) {
	switch d := Destination(strings.ToLower(strings.TrimSpace(s))); d {
	case DestPrint, DestOpen, DestCopy:
		return d, nil
	case "":
		return DestPrint, nil
	}
	return "", fmt.Errorf("unknown destination %q (want print, open or copy)", s)
}

// Navigator opens URLs.
type Navigator interface {
	Open(url string) error
}

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// Browser opens URLs with the platform's default handler.
type Browser struct {
	goos  string
	start func(name string, args ...string) error
}

// NewBrowser returns a Browser for the running platform.
func NewBrowser() *Browser {
	return &Browser{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start() // don't wait for the browser
		},
	}
}

// Open opens url in the default browser.
func (b *Browser) Open(url string) error {
	name, args, err := browserCommand(b.goos, url)
	if err != nil {
		return err
	}
	if err := b.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

func browserCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		// cmd's start would split the URL at '&'
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	}
	return "", nil, fmt.Errorf("browser opening not supported on %s", goos)
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// Copy places text on the clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Dispatcher routes a URL to its destination.
type Dispatcher struct {
	Out       io.Writer
	Navigator Navigator
	Clipboard Clipboard
}

// NewDispatcher uses the system browser and clipboard.
func NewDispatcher(out io.Writer) *Dispatcher {
	return &Dispatcher{Out: out, Navigator: NewBrowser(), Clipboard: SystemClipboard{}}
}

// Deliver sends url to dest.
func (d *Dispatcher) Deliver(dest Destination, url string) error {
	switch dest {
	case DestOpen:
		return d.Navigator.Open(url)
	case DestCopy:
		return d.Clipboard.Copy(url)
	case DestPrint, "":
		_, err := fmt.Fprintln(d.Out, url)
		return err
	}
	return fmt.Errorf("unknown destination %q", dest)
}
