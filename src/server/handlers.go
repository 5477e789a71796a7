package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/apimgr/searchconv/src/convert"
	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/history"
	"github.com/apimgr/searchconv/src/menu"
	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/preferences"
)

// maxBodyBytes bounds PUT/PATCH bodies.
const maxBodyBytes = 64 << 10

// HealthResponse is the /healthz payload
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Timestamp string            `json:"timestamp"`
	Engines   int               `json:"engines"`
	Checks    map[string]string `json:"checks"`
}

// EngineInfo is a registry entry plus the caller's visibility setting.
type EngineInfo struct {
	engines.Definition
	Visible bool `json:"visible"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	checks := map[string]string{"engines": "ok"}
	for name, c := range s.deps.Checks {
		if err := c.Ping(ctx); err != nil {
			checks[name] = "error: " + err.Error()
			status = "unhealthy"
			continue
		}
		checks[name] = "ok"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, &APIResponse{
		Success: status == "healthy",
		Data: HealthResponse{
			Status:    status,
			Version:   s.deps.Version,
			Uptime:    time.Since(s.startTime).Truncate(time.Second).String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Engines:   engines.Count(),
			Checks:    checks,
		},
		Meta: meta(r),
	})
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	prefs, err := s.deps.Prefs.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	defs := engines.All()
	if r.URL.Query().Get("visible") == "1" {
		ordered := prefs.Ordered()
		defs = make([]engines.Definition, 0, len(ordered))
		for _, id := range ordered {
			d, _ := engines.Lookup(id)
			defs = append(defs, d)
		}
	}

	out := make([]EngineInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, EngineInfo{Definition: d, Visible: prefs.IsVisible(d.ID)})
	}
	respond(w, r, out)
}

func (s *Server) handleEngine(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	d, found := engines.Lookup(r.PathValue("id"))
	if !found {
		fail(w, r, model.ErrCodeEngineNotFound, "unsupported search engine: "+r.PathValue("id"))
		return
	}
	prefs, err := s.deps.Prefs.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, r, EngineInfo{Definition: d, Visible: prefs.IsVisible(d.ID)})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if q.Get("to") == "" {
		fail(w, r, model.ErrCodeValidation, "parameter \"to\" is required")
		return
	}

	res, err := s.deps.Service.Convert(r.Context(), q.Get("url"), q.Get("to"), history.TriggerAPI)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.result(w, r, res)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	res, err := s.deps.Service.Search(r.Context(), q.Get("engine"), q.Get("q"), flag(q.Get("images")), history.TriggerAPI)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.result(w, r, res)
}

// result answers with the produced URL, or redirects to it on ?redirect=1.
func (s *Server) result(w http.ResponseWriter, r *http.Request, res *convert.Result) {
	if s.metrics != nil {
		s.metrics.ObserveResult(res)
	}
	if flag(r.URL.Query().Get("redirect")) {
		http.Redirect(w, r, res.URL, http.StatusFound)
		return
	}
	respond(w, r, res)
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	raw := r.URL.Query().Get("url")
	if strings.TrimSpace(raw) == "" {
		s.fail(w, r, model.ErrInvalidURL)
		return
	}
	respond(w, r, convert.Inspect(raw))
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete) {
		return
	}
	ctx := r.Context()

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			fail(w, r, model.ErrCodeBadRequest, "failed to read body")
			return
		}

		var saved *preferences.Preferences
		if r.Method == http.MethodPut {
			p, _, err := preferences.Decode(body)
			if err != nil {
				fail(w, r, model.ErrCodeBadRequest, "invalid JSON body: "+err.Error())
				return
			}
			saved, err = s.deps.Prefs.Save(ctx, p)
			if err != nil {
				s.fail(w, r, err)
				return
			}
		} else {
			var updates preferences.Preferences
			if err := json.Unmarshal(body, &updates); err != nil {
				fail(w, r, model.ErrCodeBadRequest, "invalid JSON body: "+err.Error())
				return
			}
			saved, err = s.deps.Prefs.Update(ctx, &updates)
			if err != nil {
				s.fail(w, r, err)
				return
			}
		}
		respond(w, r, saved)
		return

	case http.MethodDelete:
		if err := s.deps.Prefs.Reset(ctx); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	prefs, err := s.deps.Prefs.Load(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, r, prefs)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	item := q.Get("item")
	if item == "" {
		respond(w, r, menu.Items())
		return
	}

	res, err := s.deps.Service.MenuSearch(r.Context(), item, q.Get("text"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.result(w, r, res)
}

func (s *Server) handleBangs(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	if s.deps.Bangs == nil {
		respond(w, r, []any{})
		return
	}
	respond(w, r, s.deps.Bangs.GetAll())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodDelete) {
		return
	}
	if s.deps.History == nil {
		fail(w, r, model.ErrCodeUnavailable, "history is disabled")
		return
	}

	if r.Method == http.MethodDelete {
		n, err := s.deps.History.Clear(r.Context())
		if err != nil {
			s.fail(w, r, err)
			return
		}
		respond(w, r, map[string]int64{"deleted": n})
		return
	}

	limit := history.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fail(w, r, model.ErrCodeValidation, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := s.deps.History.List(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, r, entries)
}

func flag(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
