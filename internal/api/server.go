// ABOUTME: HTTP server wiring routes, auth middleware, and graceful shutdown
// ABOUTME: All domain errors are translated to status+message pairs at this boundary

package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/inkwell/internal/account"
	"github.com/2389/inkwell/internal/auth"
	"github.com/2389/inkwell/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run during shutdown.
const shutdownTimeout = 10 * time.Second

// Server handles the JSON API surface.
type Server struct {
	addr     string
	pages    store.PageStore
	accounts *account.Service
	verifier *auth.JWTVerifier
	logger   *slog.Logger
}

// New creates a new API server
func New(addr string, pages store.PageStore, accounts *account.Service, verifier *auth.JWTVerifier) *Server {
	return &Server{
		addr:     addr,
		pages:    pages,
		accounts: accounts,
		verifier: verifier,
		logger:   slog.Default().With("component", "api"),
	}
}

// Handler builds the route table. Page routes and /me sit behind the bearer
// token middleware; /register, /login, and /health do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)

	protected := auth.Middleware(s.verifier)
	mux.Handle("GET /me", protected(http.HandlerFunc(s.handleMe)))
	mux.Handle("GET /pages", protected(http.HandlerFunc(s.handleListPages)))
	mux.Handle("POST /pages", protected(http.HandlerFunc(s.handleCreatePage)))
	mux.Handle("GET /pages/{id}", protected(http.HandlerFunc(s.handleGetPage)))
	mux.Handle("PUT /pages/{id}", protected(http.HandlerFunc(s.handleUpdatePage)))
	mux.Handle("DELETE /pages/{id}", protected(http.HandlerFunc(s.handleDeletePage)))

	return mux
}

// Run starts the HTTP server and blocks until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleHealth handles GET /health requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON decodes a request body into dst, rejecting trailing garbage.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// sendJSON writes a JSON response with the given status.
func (s *Server) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// sendJSONError writes a JSON error response.
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.sendJSON(w, status, map[string]string{"error": message})
}

// sendInternalError logs the underlying error and writes a generic 500 with no
// storage detail exposed to the client.
func (s *Server) sendInternalError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	s.sendJSONError(w, http.StatusInternalServerError, "internal server error")
}
