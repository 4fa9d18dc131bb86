// ABOUTME: Shared test fixture for the SQLite store
// ABOUTME: Creates a temporary database per test with automatic cleanup

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// createTestUser inserts a user with the given email and returns it.
func createTestUser(t *testing.T, s *SQLiteStore, email string) *User {
	t.Helper()
	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfakeha",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

// createTestPage inserts a page for the given owner and returns it.
func createTestPage(t *testing.T, s *SQLiteStore, ownerID, title, content string) *Page {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	page := &Page{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.CreatePage(context.Background(), page))
	return page
}
