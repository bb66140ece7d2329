// Package entries provides the PostgreSQL-backed diary entry store.
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts entry with the timestamps already set by the caller and
// fills in the generated ID.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		INSERT INTO entries (user_id, title, content, mood, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Title, entry.Content, entry.Mood, entry.CreatedAt, entry.UpdatedAt).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Get returns the entry with id owned by userID.
func (r *PostgresRepository) Get(ctx context.Context, id, userID int64) (*models.Entry, error) {
	query := `
		SELECT id, user_id, title, content, mood, created_at, updated_at FROM entries
		WHERE id = $1 AND user_id = $2
	`
	entry := &models.Entry{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Mood, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Update replaces title, content and mood and sets updated_at, in a single
// statement scoped to the owner. created_at is read back from the row.
func (r *PostgresRepository) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		UPDATE entries SET title = $3, content = $4, mood = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Mood, entry.UpdatedAt).Scan(&entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Delete removes the entry with id owned by userID.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Count returns the number of entries owned by userID.
func (r *PostgresRepository) Count(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// List returns up to limit entries owned by userID starting at offset,
// newest first; ties on created_at are ordered by id descending.
func (r *PostgresRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*models.Entry, error) {
	query := `
		SELECT id, user_id, title, content, mood, created_at, updated_at FROM entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0, limit)
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Content, &item.Mood, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
