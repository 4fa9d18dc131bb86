// ABOUTME: Owner-scoped page CRUD store methods
// ABOUTME: Update and delete are single conditional writes matching (id, owner_id)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreatePage inserts a new page row for its owner.
func (s *SQLiteStore) CreatePage(ctx context.Context, page *Page) error {
	query := `
		INSERT INTO pages (id, title, content, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		page.ID,
		page.Title,
		page.Content,
		page.OwnerID,
		page.CreatedAt.UTC().Format(time.RFC3339),
		page.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting page: %w", err)
	}

	s.logger.Debug("created page", "id", page.ID, "owner_id", page.OwnerID)
	return nil
}

// GetPage retrieves a page by ID, scoped to its owner.
// Returns ErrNotFound if the page doesn't exist or belongs to a different owner.
func (s *SQLiteStore) GetPage(ctx context.Context, id, ownerID string) (*Page, error) {
	query := `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM pages
		WHERE id = ? AND owner_id = ?
	`

	var page Page
	var createdAtStr, updatedAtStr string

	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&page.ID,
		&page.Title,
		&page.Content,
		&page.OwnerID,
		&createdAtStr,
		&updatedAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying page: %w", err)
	}

	page.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	page.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &page, nil
}

// ListPages retrieves all pages belonging to the given owner, oldest first.
func (s *SQLiteStore) ListPages(ctx context.Context, ownerID string) ([]*Page, error) {
	query := `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM pages
		WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	var pages []*Page
	for rows.Next() {
		var page Page
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(
			&page.ID,
			&page.Title,
			&page.Content,
			&page.OwnerID,
			&createdAtStr,
			&updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning page row: %w", err)
		}

		page.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		page.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}

		pages = append(pages, &page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating page rows: %w", err)
	}

	return pages, nil
}

// UpdatePage updates a page's title and content in a single conditional write
// matching both id and owner_id.
// Returns ErrNotFound if no row matched, whether the page doesn't exist or
// belongs to a different owner.
func (s *SQLiteStore) UpdatePage(ctx context.Context, id, ownerID, title, content string) error {
	query := `
		UPDATE pages
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		title,
		content,
		time.Now().UTC().Format(time.RFC3339),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("updating page: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("updated page", "id", id, "owner_id", ownerID)
	return nil
}

// DeletePage removes a page in a single conditional write matching both id
// and owner_id. Same discipline as UpdatePage: zero matched rows means
// ErrNotFound regardless of the cause.
func (s *SQLiteStore) DeletePage(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM pages WHERE id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting page: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted page", "id", id, "owner_id", ownerID)
	return nil
}
