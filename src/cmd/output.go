package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Dracula colors
var (
	comment = lipgloss.Color("#6272a4")
	cyan    = lipgloss.Color("#8be9fd")
	green   = lipgloss.Color("#50fa7b")
	purple  = lipgloss.Color("#bd93f9")
	red     = lipgloss.Color("#ff5555")
)

// isTerminalFunc is replaced in tests.
var isTerminalFunc = term.IsTerminal

// printer writes command output in the configured format.
type printer struct {
	w      io.Writer
	format string
	color  bool

	header lipgloss.Style
	url    lipgloss.Style
	ok     lipgloss.Style
	bad    lipgloss.Style
	muted  lipgloss.Style

	renderer *lipgloss.Renderer
}

func newPrinter(w io.Writer, format, colorMode string, disable bool) *printer {
	p := &printer{w: w, format: format, color: colorEnabled(w, colorMode, disable)}

	p.renderer = lipgloss.NewRenderer(w)
	if p.color {
		p.renderer.SetColorProfile(termenv.TrueColor)
	} else {
		p.renderer.SetColorProfile(termenv.Ascii)
	}

	p.header = p.renderer.NewStyle().Foreground(purple).Bold(true)
	p.url = p.renderer.NewStyle().Foreground(cyan)
	p.ok = p.renderer.NewStyle().Foreground(green)
	p.bad = p.renderer.NewStyle().Foreground(red)
	p.muted = p.renderer.NewStyle().Foreground(comment)
	return p
}

// colorEnabled resolves auto, always and never. Auto needs a terminal and
// no NO_COLOR in the environment.
func colorEnabled(w io.Writer, mode string, disable bool) bool {
	if disable {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminalFunc(int(f.Fd()))
}

// engineStyle colors an engine name with its brand color.
func (p *printer) engineStyle(hex string) lipgloss.Style {
	s := p.renderer.NewStyle().Bold(true)
	if hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	return s
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Table prints rows under a styled header with columns aligned on their
// visible width, so styled cells line up.
func (p *printer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string, style *lipgloss.Style) {
		var sb strings.Builder
		for i, cell := range cells {
			text := cell
			if style != nil {
				text = style.Render(cell)
			}
			sb.WriteString(text)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		fmt.Fprintln(p.w, sb.String())
	}

	line(headers, &p.header)
	for _, row := range rows {
		line(row, nil)
	}
}

// KeyValues prints aligned "key: value" lines.
func (p *printer) KeyValues(pairs [][2]string) {
	width := 0
	for _, kv := range pairs {
		if len(kv[0]) > width {
			width = len(kv[0])
		}
	}
	for _, kv := range pairs {
		fmt.Fprintf(p.w, "%s %s\n", p.header.Render(fmt.Sprintf("%-*s", width+1, kv[0]+":")), kv[1])
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
