// Package server implements the gridflow preview HTTP API.
//
// The server arranges a section manifest on demand for any requested
// viewport and, when a snapshot store is configured, persists and serves
// named layout snapshots. All responses are JSON.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridflow/pkg/errors"
	"github.com/matzehuels/gridflow/pkg/pipeline"
	"github.com/matzehuels/gridflow/pkg/store"
)

// Config holds server dependencies.
type Config struct {
	// Runner executes the arrangement pipeline. Required.
	Runner *pipeline.Runner

	// ManifestPath is the manifest arranged by /v1/layout. Required.
	ManifestPath string

	// Store persists layout snapshots. Optional; snapshot endpoints
	// return 404 when unset.
	Store store.Store

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server serves arranged layouts over HTTP.
type Server struct {
	runner       *pipeline.Runner
	manifestPath string
	store        store.Store
	logger       *log.Logger
}

// New creates a server from the config.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:       cfg.Runner,
		manifestPath: cfg.ManifestPath,
		store:        cfg.Store,
		logger:       logger,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/layout", s.handleLayout)

	if s.store != nil {
		r.Route("/v1/snapshots", func(r chi.Router) {
			r.Post("/", s.handleSnapshotCreate)
			r.Get("/", s.handleSnapshotList)
			r.Get("/{id}", s.handleSnapshotGet)
			r.Delete("/{id}", s.handleSnapshotDelete)
		})
	}

	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayout arranges the manifest for the requested viewport.
// Query parameters: width, height (cells), refresh (bypass cache).
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		ManifestPath: s.manifestPath,
		Logger:       s.logger,
		Refresh:      r.URL.Query().Get("refresh") == "true",
	}

	var err error
	if opts.Width, err = queryFloat(r, "width"); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid width"))
		return
	}
	if opts.Height, err = queryFloat(r, "height"); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid height"))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Debug("served layout",
		"width", opts.Width,
		"height", opts.Height,
		"frames", result.Stats.FrameCount,
		"cached", result.CacheInfo.LayoutHit)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

// handleSnapshotCreate arranges the manifest and persists the result.
func (s *Server) handleSnapshotCreate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if r.Body != nil {
		// Empty or absent bodies fall back to defaults
		_ = json.NewDecoder(r.Body).Decode(&opts)
	}
	opts.ManifestPath = s.manifestPath
	opts.Manifest = ""
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	snap := store.NewSnapshot(result.ManifestHash, result.Layout)
	if err := s.store.Put(r.Context(), snap); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("created snapshot", "id", snap.ID, "frames", result.Stats.FrameCount)
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleSnapshotList(w http.ResponseWriter, r *http.Request) {
	snaps, err := s.store.List(r.Context(), r.URL.Query().Get("manifest_hash"))
	if err != nil {
		writeError(w, err)
		return
	}
	if snaps == nil {
		snaps = []*store.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (s *Server) handleSnapshotGet(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSnapshotDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

// queryFloat parses a float query parameter. Missing parameters return 0 so
// pipeline defaults apply.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps error codes onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)

	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMode, errors.ErrCodeInvalidColumns,
		errors.ErrCodeInvalidMetrics, errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidSection,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeSnapshotNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	}

	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
