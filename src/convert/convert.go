// Package convert carries a search from one engine to another and runs
// fresh searches, applying saved preferences and recording history.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/apimgr/searchconv/src/action"
	"github.com/apimgr/searchconv/src/bangs"
	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/history"
	"github.com/apimgr/searchconv/src/menu"
	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/preferences"
)

// PrefsLoader supplies the current preferences.
type PrefsLoader interface {
	Load(ctx context.Context) (*preferences.Preferences, error)
}

// Service performs conversions and searches.
type Service struct {
	prefs      PrefsLoader
	bangs      *bangs.Manager
	history    history.Recorder
	dispatcher *action.Dispatcher
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithBangs enables "!shortcut" parsing in Search.
func WithBangs(m *bangs.Manager) Option {
	return func(s *Service) { s.bangs = m }
}

// WithHistory records every produced URL.
func WithHistory(r history.Recorder) Option {
	return func(s *Service) { s.history = r }
}

// WithDispatcher sets where Deliver sends URLs.
func WithDispatcher(d *action.Dispatcher) Option {
	return func(s *Service) { s.dispatcher = d }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a service.
func New(prefs PrefsLoader, opts ...Option) *Service {
	s := &Service{
		prefs:   prefs,
		history: history.Nop{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes a produced URL.
type Result struct {
	Trigger      history.Trigger `json:"trigger"`
	SourceURL    string          `json:"source_url,omitempty"`
	SourceEngine string          `json:"source_engine,omitempty"`
	TargetEngine string          `json:"target_engine"`
	Query        string          `json:"query"`
	Image        bool            `json:"image"`
	URL          string          `json:"url"`
}

// ResolveEngine maps an engine id, legacy button id or bang alias to a
// registered engine id.
func (s *Service) ResolveEngine(name string) (string, bool) {
	id := preferences.NormalizeEngineID(name)
	if engines.Exists(id) {
		return id, true
	}
	if s.bangs != nil {
		if b := s.bangs.Lookup(id); b != nil {
			return b.EngineID, true
		}
	}
	return "", false
}

// Convert extracts the search from rawURL and rebuilds it for target. An
// image search stays an image search when target supports it.
func (s *Service) Convert(ctx context.Context, rawURL, target string, trigger history.Trigger) (*Result, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, model.ErrInvalidURL
	}

	targetID, ok := s.ResolveEngine(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrEngineNotFound, target)
	}

	query, ok := engines.Extract(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w in %q", model.ErrNoQuery, rawURL)
	}

	image := engines.IsImageSearch(rawURL)
	source, _ := engines.Detect(rawURL)

	res, err := s.build(ctx, targetID, query, image)
	if err != nil {
		return nil, err
	}
	res.Trigger = trigger
	res.SourceURL = rawURL
	res.SourceEngine = source

	s.record(ctx, res)
	return res, nil
}

// Search builds a fresh search. A bang in query overrides engine. An empty
// engine uses the preferred default.
func (s *Service) Search(ctx context.Context, engine, query string, image bool, trigger history.Trigger) (*Result, error) {
	query = strings.TrimSpace(query)

	if s.bangs != nil {
		if b := s.bangs.Parse(query); b != nil {
			engine, query = b.Bang.EngineID, b.Query
			if trigger == history.TriggerSearch {
				trigger = history.TriggerBang
			}
		} else if shortcut := bangs.ExtractBang(query); shortcut != "" {
			s.logger.Warn("unknown bang, searching literally", "bang", shortcut)
		}
	}

	if query == "" {
		return nil, model.ErrEmptyQuery
	}

	var targetID string
	if strings.TrimSpace(engine) == "" {
		prefs, err := s.prefs.Load(ctx)
		if err != nil {
			return nil, err
		}
		targetID = prefs.DefaultEngine()
	} else {
		id, ok := s.ResolveEngine(engine)
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrEngineNotFound, engine)
		}
		targetID = id
	}

	res, err := s.build(ctx, targetID, query, image)
	if err != nil {
		return nil, err
	}
	res.Trigger = trigger

	s.record(ctx, res)
	return res, nil
}

// Shortcut searches with the engine in quick-access slot n.
func (s *Service) Shortcut(ctx context.Context, n int, query string, image bool) (*Result, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := prefs.Shortcut(n)
	if !ok {
		return nil, fmt.Errorf("%w: no engine in slot %d", model.ErrEngineNotFound, n)
	}
	return s.Search(ctx, id, query, image, history.TriggerShortcut)
}

// MenuSearch searches the selected text with the engine behind a clicked
// menu item.
func (s *Service) MenuSearch(ctx context.Context, itemID, selection string) (*Result, error) {
	id, err := menu.ParseItemID(itemID)
	if err != nil {
		return nil, err
	}
	// Selected text is taken literally; bangs are not parsed.
	query := strings.TrimSpace(selection)
	if query == "" {
		return nil, model.ErrEmptyQuery
	}
	res, err := s.build(ctx, id, query, false)
	if err != nil {
		return nil, err
	}
	res.Trigger = history.TriggerMenu
	s.record(ctx, res)
	return res, nil
}

// Deliver sends a produced URL to dest.
func (s *Service) Deliver(res *Result, dest action.Destination) error {
	if s.dispatcher == nil {
		return fmt.Errorf("no dispatcher configured")
	}
	return s.dispatcher.Deliver(dest, res.URL)
}

func (s *Service) build(ctx context.Context, id, query string, image bool) (*Result, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return nil, err
	}

	u, ok := engines.Build(id, query, image, prefs.Domains())
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrEngineNotFound, id)
	}

	d, _ := engines.Lookup(id)
	return &Result{
		TargetEngine: id,
		Query:        query,
		Image:        image && d.SupportsImages(),
		URL:          u,
	}, nil
}

func (s *Service) record(ctx context.Context, res *Result) {
	err := s.history.Record(ctx, &history.Entry{
		Trigger:      res.Trigger,
		SourceURL:    res.SourceURL,
		SourceEngine: res.SourceEngine,
		TargetEngine: res.TargetEngine,
		Query:        res.Query,
		Image:        res.Image,
		ResultURL:    res.URL,
	})
	if err != nil {
		s.logger.Warn("history not recorded", "engine", res.TargetEngine, "error", err)
	}
}

// Inspection is what can be learned about a URL without converting it.
type Inspection struct {
	URL        string `json:"url"`
	Detected   bool   `json:"detected"`
	Engine     string `json:"engine,omitempty"`
	EngineName string `json:"engine_name,omitempty"`
	Image      bool   `json:"image"`
	Query      string `json:"query,omitempty"`
	HasQuery   bool   `json:"has_query"`
	Site       string `json:"site,omitempty"`
	Status     string `json:"status"`
}

// NotSupportedStatus is the status line for pages no engine matches.
const NotSupportedStatus = "Not a supported search page"

// Inspect reports the engine, image flag and query of rawURL.
func Inspect(rawURL string) Inspection {
	in := Inspection{URL: rawURL, Site: Site(rawURL)}
	in.Query, in.HasQuery = engines.Extract(rawURL)

	id, ok := engines.Detect(rawURL)
	if !ok {
		in.Status = NotSupportedStatus
		return in
	}

	d, _ := engines.Lookup(id)
	in.Detected = true
	in.Engine = id
	in.EngineName = d.Name
	in.Image = engines.IsImageSearch(rawURL)
	in.Status = "Detected: " + d.Name
	if in.Image {
		in.Status += " (Images)"
	}
	return in
}

// Site returns the registrable domain of rawURL's host, such as
// "amazon.co.uk" for www.amazon.co.uk, or "" when there is none.
func Site(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(host))
	if err != nil {
		return ""
	}
	return site
}
