package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/bilingua"
	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes caps the size of a saved paragraph pair.
const maxBodyBytes = 1 << 20

// Server exposes a paragraph store over HTTP.
type Server struct {
	Store   ports.ParagraphStore
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts a Prometheus handler on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the store.
func NewHandler(store ports.ParagraphStore, opts ...Option) http.Handler {
	server := &Server{
		Store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}
	if _, err := GetSwagger(); err != nil {
		server.logger.Error("OpenAPI document is invalid, /openapi endpoints will fail", "error", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/ptr", server.GetPointer)
	r.Post("/ptr", server.SetPointer)
	r.Get("/pars", server.GetParagraphs)
	r.Post("/save", server.SaveParagraphs)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/openapi.yaml", server.GetSpecYAML)
	r.Get("/openapi.json", server.GetSpecJSON)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Bilingua API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetPointer handles the GET /ptr request.
func (s *Server) GetPointer(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Store.Pointer())
}

// SetPointer handles the POST /ptr?n= request.
func (s *Server) SetPointer(w http.ResponseWriter, r *http.Request) {
	var n int
	if err := runtime.BindQueryParameter("form", true, true, "n", r.URL.Query(), &n); err != nil {
		http.Error(w, "Invalid parameter n", http.StatusBadRequest)
		s.logger.Warn("SetPointer: invalid parameter", "error", err)
		return
	}

	if err := s.Store.SetPointer(r.Context(), n); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			http.Error(w, "Pointer value cannot be negative", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to store pointer", http.StatusInternalServerError)
		s.logger.Error("SetPointer failed", "pointer", n, "error", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetParagraphs handles the GET /pars?shift= request.
func (s *Server) GetParagraphs(w http.ResponseWriter, r *http.Request) {
	var shift int
	if err := runtime.BindQueryParameter("form", true, false, "shift", r.URL.Query(), &shift); err != nil {
		http.Error(w, "Invalid parameter shift", http.StatusBadRequest)
		s.logger.Warn("GetParagraphs: invalid parameter", "error", err)
		return
	}
	s.writeJSON(w, s.Store.Pair(shift))
}

// SaveParagraphs handles the POST /save request.
func (s *Server) SaveParagraphs(w http.ResponseWriter, r *http.Request) {
	var body domain.ParagraphPair
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("SaveParagraphs: invalid request body", "error", err)
		return
	}

	if err := s.Store.Save(r.Context(), body); err != nil {
		http.Error(w, "Failed to save paragraphs", http.StatusInternalServerError)
		s.logger.Error("Save failed", "error", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, map[string]string{
		"app":         "bilingua-http",
		"version":     strings.TrimSpace(bilingua.Version),
		"api_version": apiVersion,
	})
}

// GetSpecYAML serves the embedded OpenAPI document.
func (s *Server) GetSpecYAML(w http.ResponseWriter, r *http.Request) {
	if _, err := GetSwagger(); err != nil {
		http.Error(w, "Failed to load spec", http.StatusInternalServerError)
		s.logger.Error("Failed to load OpenAPI spec", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(rawSpec)
}

// GetSpecJSON serves the OpenAPI document as JSON.
func (s *Server) GetSpecJSON(w http.ResponseWriter, r *http.Request) {
	swagger, err := GetSwagger()
	if err != nil {
		http.Error(w, "Failed to load spec", http.StatusInternalServerError)
		s.logger.Error("Failed to load OpenAPI spec", "error", err)
		return
	}
	s.writeJSON(w, swagger)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
