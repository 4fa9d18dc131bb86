// ABOUTME: Tests for the page CRUD endpoints
// ABOUTME: Covers validation, ownership derivation from the token, and 404 paths

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreatePage(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title:   "My first page",
		Content: "hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreatePageResponse
	decodeResponse(t, rec, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "My first page", resp.Title)
	assert.Equal(t, "hello", resp.Content)
	assert.NotEmpty(t, resp.OwnerID)
}

func TestHandleCreatePage_EmptyTitle(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title:   "",
		Content: "hello",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "title is required", resp["error"])
}

func TestHandleCreatePage_ContentOptional(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title: "Just a title",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreatePageResponse
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "", resp.Content)
}

func TestHandleListPages_Empty(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodGet, "/pages", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty list, not null
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleGetPage_NotFound(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodGet, "/pages/no-such-page", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "page not found", resp["error"])
}

func TestHandleUpdatePage(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title:   "Before",
		Content: "old",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreatePageResponse
	decodeResponse(t, rec, &created)

	rec = doRequest(t, h, http.MethodPut, "/pages/"+created.ID, token, UpdatePageRequest{
		Title:   "After",
		Content: "new",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/pages/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page PageResponse
	decodeResponse(t, rec, &page)
	assert.Equal(t, "After", page.Title)
	assert.Equal(t, "new", page.Content)
}

func TestHandleUpdatePage_EmptyTitle(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title: "Keep me",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreatePageResponse
	decodeResponse(t, rec, &created)

	rec = doRequest(t, h, http.MethodPut, "/pages/"+created.ID, token, UpdatePageRequest{
		Title: "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The page keeps its old title
	rec = doRequest(t, h, http.MethodGet, "/pages/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page PageResponse
	decodeResponse(t, rec, &page)
	assert.Equal(t, "Keep me", page.Title)
}

func TestHandleUpdatePage_NotFound(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPut, "/pages/no-such-page", token, UpdatePageRequest{
		Title: "Anything",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeletePage(t *testing.T) {
	h := setupHandler(t)
	token := registerAndLogin(t, h, "alice@example.com", "hunter2hunter2")

	rec := doRequest(t, h, http.MethodPost, "/pages", token, CreatePageRequest{
		Title: "Doomed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreatePageResponse
	decodeResponse(t, rec, &created)

	rec = doRequest(t, h, http.MethodDelete, "/pages/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// A second delete finds nothing
	rec = doRequest(t, h, http.MethodDelete, "/pages/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageEndpoints_RequireAuth(t *testing.T) {
	h := setupHandler(t)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/pages"},
		{method: http.MethodPost, path: "/pages"},
		{method: http.MethodGet, path: "/pages/some-id"},
		{method: http.MethodPut, path: "/pages/some-id"},
		{method: http.MethodDelete, path: "/pages/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPageEndpoints_RejectBadToken(t *testing.T) {
	h := setupHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/pages", "not-a-real-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
