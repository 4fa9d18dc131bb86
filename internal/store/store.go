// ABOUTME: Store interface and data types for inkwell persistence
// ABOUTME: Defines User, Page structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist, or when an
// owner-scoped write matched no row. Callers cannot distinguish a page that does
// not exist from a page owned by someone else.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when trying to create a user with an email that is
// already registered.
var ErrEmailExists = errors.New("email already registered")

// User represents a registered principal. The password hash is a bcrypt digest
// and is never exposed outside the store and account packages.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Page represents a document owned by exactly one user. Content is an opaque
// blob produced by the editor; the store never interprets it.
type Page struct {
	ID        string
	Title     string
	Content   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore defines credential persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// PageStore defines owner-scoped page operations. Every method takes the
// authenticated owner's ID as the scoping key; no method can observe or mutate
// another owner's pages.
type PageStore interface {
	CreatePage(ctx context.Context, page *Page) error
	GetPage(ctx context.Context, id, ownerID string) (*Page, error)
	ListPages(ctx context.Context, ownerID string) ([]*Page, error)
	UpdatePage(ctx context.Context, id, ownerID, title, content string) error
	DeletePage(ctx context.Context, id, ownerID string) error
}

// Store combines all persistence interfaces. SQLiteStore implements it; tests
// can substitute doubles for the individual interfaces.
type Store interface {
	UserStore
	PageStore

	Close() error
}
