package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/termgraph/pkg/buildinfo"
	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/examples"
	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/pipeline"
)

// RenderResponse is the body of a successful render.
type RenderResponse struct {
	Frame string    `json:"frame"`
	Lines int       `json:"lines"`
	Stats StatsBody `json:"stats"`
	Cache CacheBody `json:"cache"`
}

// StatsBody reports pipeline statistics.
type StatsBody struct {
	Nodes    int   `json:"nodes"`
	Edges    int   `json:"edges"`
	Placed   int   `json:"placed"`
	LayoutMS int64 `json:"layout_ms"`
	RenderMS int64 `json:"render_ms"`
}

// CacheBody reports which stages were served from cache.
type CacheBody struct {
	LayoutHit bool `json:"layout_hit"`
	FrameHit  bool `json:"frame_hit"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, doc)
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	doc, err := examples.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, doc)
}

func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"examples": examples.Names()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts, err := s.options(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	placed, _, err := s.runner.Layout(r.Context(), doc, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = tgio.Write(w, tgio.FormatJSON, placed)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, doc *tgio.Document) {
	q := r.URL.Query()
	opts, err := s.options(q)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.runner.Render(r.Context(), doc, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if q.Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(res.Frame + "\n"))
		return
	}
	writeJSON(w, http.StatusOK, newRenderResponse(res))
}

func newRenderResponse(res *pipeline.Result) RenderResponse {
	lines := 0
	if res.Frame != "" {
		lines = 1
		for _, c := range res.Frame {
			if c == '\n' {
				lines++
			}
		}
	}
	return RenderResponse{
		Frame: res.Frame,
		Lines: lines,
		Stats: StatsBody{
			Nodes:    res.Stats.NodeCount,
			Edges:    res.Stats.EdgeCount,
			Placed:   res.Stats.Placed,
			LayoutMS: res.Stats.LayoutTime.Milliseconds(),
			RenderMS: res.Stats.RenderTime.Milliseconds(),
		},
		Cache: CacheBody{
			LayoutHit: res.CacheInfo.LayoutHit,
			FrameHit:  res.CacheInfo.FrameHit,
		},
	}
}

// options overlays query parameters on the server defaults.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	opts := s.defaults
	if v := q.Get("engine"); v != "" {
		opts.Engine = v
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed %q is not a number", v)
		}
		opts.Seed = n
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"iterations", &opts.Iterations},
		{"width", &opts.Width},
		{"height", &opts.Height},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s %q is not a non-negative number", p.name, v)
		}
		*p.dst = n
	}
	for _, p := range []struct {
		name string
		dst  *tgio.Visibility
	}{
		{"labels", &opts.Labels},
		{"attrs", &opts.Attrs},
		{"edge_labels", &opts.EdgeLabels},
	} {
		if v := q.Get(p.name); v != "" {
			vis, err := tgio.ParseVisibility(v)
			if err != nil {
				return opts, err
			}
			*p.dst = vis
		}
	}
	opts.Relayout = q.Get("relayout") == "true"
	opts.Refresh = q.Get("refresh") == "true"
	return opts, opts.Validate()
}

func readDocument(w http.ResponseWriter, r *http.Request) (*tgio.Document, error) {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()
	return tgio.Read(body, tgio.FormatJSON)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), errorBody{Code: string(code), Message: errors.UserMessage(err)})
}
