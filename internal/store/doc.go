// Package store provides persistent storage for inkwell using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture:
//
//   - UserStore: credential rows (id, email, bcrypt hash)
//   - PageStore: owner-scoped page CRUD
//   - Store: composition of both plus Close
//
// SQLiteStore implements all interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries.
//
// # Ownership Scoping
//
// Every page operation takes the authenticated owner's ID as a scoping key.
// Reads filter on owner_id; update and delete are single conditional
// statements matching both id and owner_id, so a zero-row result collapses
// "does not exist" and "owned by someone else" into one ErrNotFound. This is
// what prevents existence leaks across owners.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// The schema is created automatically on open. Timestamps are stored as
// RFC3339 UTC text.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: entity does not exist (or is not yours)
//   - ErrEmailExists: email uniqueness violation on registration
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewSQLiteStore with a t.TempDir() path for integration tests with real
// SQLite.
package store
