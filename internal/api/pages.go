// ABOUTME: Owner-scoped page CRUD handlers
// ABOUTME: The acting owner always comes from the verified token, never the client

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/2389/inkwell/internal/auth"
	"github.com/2389/inkwell/internal/store"
)

// PageResponse is the JSON shape of a page in list and get responses.
type PageResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePageRequest is the JSON request body for POST /pages.
type CreatePageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePageResponse is the JSON response for POST /pages.
type CreatePageResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	OwnerID string `json:"ownerId"`
}

// UpdatePageRequest is the JSON request body for PUT /pages/{id}.
type UpdatePageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePageResponse is the JSON response for PUT /pages/{id}.
type UpdatePageResponse struct {
	Message string `json:"message"`
}

// handleListPages handles GET /pages requests.
// Returns every page belonging to the acting owner, full content included.
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())

	pages, err := s.pages.ListPages(r.Context(), identity.SubjectID)
	if err != nil {
		s.sendInternalError(w, "failed to list pages", err)
		return
	}

	response := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		response = append(response, PageResponse{
			ID:      p.ID,
			Title:   p.Title,
			Content: p.Content,
		})
	}

	s.sendJSON(w, http.StatusOK, response)
}

// handleCreatePage handles POST /pages requests.
func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())

	var req CreatePageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Title == "" {
		s.sendJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	now := time.Now().UTC()
	page := &store.Page{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		OwnerID:   identity.SubjectID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pages.CreatePage(r.Context(), page); err != nil {
		s.sendInternalError(w, "failed to create page", err)
		return
	}

	s.sendJSON(w, http.StatusCreated, CreatePageResponse{
		ID:      page.ID,
		Title:   page.Title,
		Content: page.Content,
		OwnerID: page.OwnerID,
	})
}

// handleGetPage handles GET /pages/{id} requests.
// A page that doesn't exist and a page owned by someone else both return 404.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())
	id := r.PathValue("id")

	page, err := s.pages.GetPage(r.Context(), id, identity.SubjectID)
	if errors.Is(err, store.ErrNotFound) {
		s.sendJSONError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.sendInternalError(w, "failed to get page", err)
		return
	}

	s.sendJSON(w, http.StatusOK, PageResponse{
		ID:      page.ID,
		Title:   page.Title,
		Content: page.Content,
	})
}

// handleUpdatePage handles PUT /pages/{id} requests.
func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())
	id := r.PathValue("id")

	var req UpdatePageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Title == "" {
		s.sendJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	err := s.pages.UpdatePage(r.Context(), id, identity.SubjectID, req.Title, req.Content)
	if errors.Is(err, store.ErrNotFound) {
		s.sendJSONError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.sendInternalError(w, "failed to update page", err)
		return
	}

	s.sendJSON(w, http.StatusOK, UpdatePageResponse{Message: "page updated"})
}

// handleDeletePage handles DELETE /pages/{id} requests.
func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustFromContext(r.Context())
	id := r.PathValue("id")

	err := s.pages.DeletePage(r.Context(), id, identity.SubjectID)
	if errors.Is(err, store.ErrNotFound) {
		s.sendJSONError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.sendInternalError(w, "failed to delete page", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
