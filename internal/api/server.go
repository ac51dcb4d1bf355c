package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mariohevia/JobVault-Libre/internal/config"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
	"github.com/mariohevia/JobVault-Libre/internal/store"
)

// Server is the local HTTP surface the desktop shell (and, later, a browser
// extension) talks to. It only ever binds on the user's machine.
type Server struct {
	store     *store.Store
	queries   *store.Queries
	profile   config.ProfileConfig
	log       *zap.Logger
	timeout   time.Duration
	listLimit int
	mux       *http.ServeMux
}

func New(st *store.Store, profile config.ProfileConfig, cfg *config.Config, log *zap.Logger) *Server {
	s := &Server{
		store:     st,
		queries:   st.Queries(),
		profile:   profile,
		log:       log,
		timeout:   cfg.RequestTimeout,
		listLimit: cfg.ListLimit,
		mux:       http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// CORS preflight + main handlers
	s.mux.HandleFunc("OPTIONS /applications", s.handlePreflight)
	s.mux.HandleFunc("POST /applications", s.handleCreate)
	s.mux.HandleFunc("GET /applications", s.handleList)

	s.mux.HandleFunc("OPTIONS /applications/{id}", s.handlePreflight)
	s.mux.HandleFunc("GET /applications/{id}", s.handleGet)
	s.mux.HandleFunc("PATCH /applications/{id}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /applications/{id}", s.handleDelete)

	s.mux.HandleFunc("OPTIONS /applications/{id}/attachments/{kind}", s.handlePreflight)
	s.mux.HandleFunc("PUT /applications/{id}/attachments/{kind}", s.handlePutAttachment)
	s.mux.HandleFunc("GET /applications/{id}/attachments/{kind}", s.handleGetAttachment)
	s.mux.HandleFunc("DELETE /applications/{id}/attachments/{kind}", s.handleDeleteAttachment)
}

// Helper used by handlers to allow browser extension → API calls.
func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Filename, X-Extracted-Text")
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

func (s *Server) Listen(addr string) error {
	s.log.Info("server starting", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	writeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}

	body := map[string]any{"error": err.Error()}
	var e *errs.Error
	if errors.As(err, &e) && len(e.Troubleshooting) > 0 {
		body["troubleshooting"] = e.Troubleshooting
	}
	s.respondJSON(w, status, body)
}
