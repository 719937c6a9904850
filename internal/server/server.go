// Package server exposes runs and their replays over a JSON HTTP API.
//
// Routes:
//
//	POST /v1/runs                   run an algorithm, store and return the run
//	GET  /v1/runs                   list stored run ids, oldest first
//	GET  /v1/runs/{id}              one stored run
//	GET  /v1/runs/{id}/replay?step  overlay after folding steps [0..step]
//	GET  /v1/presets                preset graphs
//	GET  /v1/algorithms             supported algorithms
//	GET  /healthz                   liveness
//	GET  /metrics                   Prometheus metrics
//
// Errors use the envelope {"error": "..."}.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/runs"
	"github.com/katalvlaran/pathtrace/replay"
	"github.com/katalvlaran/pathtrace/shortest"
)

// maxBodyBytes bounds POST /v1/runs request bodies.
const maxBodyBytes = 1 << 20

// Server holds handler dependencies.
type Server struct {
	log   *slog.Logger
	store *runs.Store
	now   func() time.Time
	newID func() string
}

// New returns a Server keeping at most maxRuns runs in memory.
func New(log *slog.Logger, maxRuns int) *Server {
	return &Server{
		log:   log,
		store: runs.NewStore(maxRuns),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Handler returns the chi router serving every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/runs", s.createRun)
		r.Get("/runs", s.listRuns)
		r.Get("/runs/{id}", s.getRun)
		r.Get("/runs/{id}/replay", s.replayRun)
		r.Get("/presets", s.listPresets)
		r.Get("/algorithms", s.listAlgorithms)
	})
	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// runRequest is the body of POST /v1/runs. Graph wins over Preset; with
// neither, preset 0 is used.
type runRequest struct {
	Algorithm shortest.Algorithm `json:"algorithm"`
	Source    string             `json:"source"`
	Graph     *graph.Graph       `json:"graph,omitempty"`
	Preset    int                `json:"preset"`
}

// POST /v1/runs
func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = shortest.Default
	}

	g := builder.PresetGraph(req.Preset)
	if req.Graph != nil {
		g = *req.Graph
	}

	res := runs.Execute(s.log, runs.Request{Algorithm: req.Algorithm, Source: req.Source, Graph: g})
	run := runs.Run{ID: s.newID(), CreatedAt: s.now().UTC(), Graph: g, Result: res}
	if evicted := s.store.Put(run); evicted > 0 {
		s.log.Debug("evicted runs", "count", evicted)
	}

	w.Header().Set("Location", "/v1/runs/"+run.ID)
	s.writeJSON(w, http.StatusCreated, run)
}

// GET /v1/runs
func (s *Server) listRuns(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"runs": s.store.IDs()})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (runs.Run, bool) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(id)
	if errors.Is(err, runs.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("run %q not found", id))
		return runs.Run{}, false
	}

	return run, true
}

// GET /v1/runs/{id}
func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	if run, ok := s.lookup(w, r); ok {
		s.writeJSON(w, http.StatusOK, run)
	}
}

// GET /v1/runs/{id}/replay?step=k; without step the last step is shown.
func (s *Server) replayRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookup(w, r)
	if !ok {
		return
	}

	step := len(run.Result.Steps) - 1
	if raw := r.URL.Query().Get("step"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid step %q", raw))
			return
		}
		step = k
	}

	s.writeJSON(w, http.StatusOK, replay.Project(run.Graph, run.Result, step))
}

// GET /v1/presets
func (s *Server) listPresets(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, builder.Presets())
}

type algorithmInfo struct {
	ID          shortest.Algorithm `json:"id"`
	Label       string             `json:"label"`
	NeedsSource bool               `json:"needsSource"`
}

// GET /v1/algorithms
func (s *Server) listAlgorithms(w http.ResponseWriter, _ *http.Request) {
	algos := shortest.Algorithms()
	out := make([]algorithmInfo, len(algos))
	for i, a := range algos {
		out[i] = algorithmInfo{ID: a, Label: a.Label(), NeedsSource: a.NeedsSource()}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GET /healthz
func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
