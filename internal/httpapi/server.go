// Package httpapi exposes the consultation flow over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlaw-hk/counsel/pkg/counsel"
)

const requestIDHeader = "X-Request-ID"

// Server routes API requests to the counsel facade.
type Server struct {
	svc    *counsel.Counsel
	log    *zap.Logger
	router *chi.Mux
}

// NewServer builds the router. A nil logger disables request logging.
func NewServer(svc *counsel.Counsel, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	s := &Server{svc: svc, log: log, router: r}

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/consult", s.handleConsult)
		r.Get("/cases/search", s.handleSearchCases)
		r.Get("/sections/search", s.handleSearchSections)
		r.Get("/consultations", s.handleRecentConsultations)
		r.Get("/consultations/{id}", s.handleGetConsultation)
		r.Get("/stats", s.handleStats)
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.router)
}

// requestID assigns a UUID to every request that does not carry one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("id", ww.Header().Get(requestIDHeader)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
