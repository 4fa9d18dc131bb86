// ABOUTME: Registration, login, and identity handlers
// ABOUTME: Typed request/response DTOs validated before reaching the account service

package api

import (
	"errors"
	"net/http"

	"github.com/2389/inkwell/internal/account"
	"github.com/2389/inkwell/internal/auth"
	"github.com/2389/inkwell/internal/store"
)

// RegisterRequest is the JSON request body for POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the JSON response for POST /register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest is the JSON request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the JSON response for POST /login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// MeResponse is the JSON response for GET /me.
type MeResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// handleRegister handles POST /register requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingCredentials):
			s.sendJSONError(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, store.ErrEmailExists):
			s.sendJSONError(w, http.StatusConflict, "email already registered")
		default:
			s.sendInternalError(w, "failed to register user", err)
		}
		return
	}

	s.sendJSON(w, http.StatusCreated, RegisterResponse{
		Message: "user created",
		UserID:  user.ID,
	})
}

// handleLogin handles POST /login requests.
// On success it issues a signed access token; nothing is stored server-side.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.accounts.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingCredentials):
			s.sendJSONError(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, account.ErrInvalidCredentials):
			s.sendJSONError(w, http.StatusUnauthorized, "invalid email or password")
		default:
			s.sendInternalError(w, "failed to verify credentials", err)
		}
		return
	}

	token, err := s.verifier.Issue(user)
	if err != nil {
		s.sendInternalError(w, "failed to issue token", err)
		return
	}

	s.sendJSON(w, http.StatusOK, LoginResponse{AccessToken: token})
}

// handleMe handles GET /me requests.
// It echoes the identity decoded from the presented token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())

	s.sendJSON(w, http.StatusOK, MeResponse{
		UserID: identity.SubjectID,
		Email:  identity.Email,
	})
}
