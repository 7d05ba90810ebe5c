package resources

import (
	"context"
	"fmt"

	"github.com/jiji-learning/jiji-backend/pkg/database"
)

// Store reads and writes resources and query-log rows in Postgres.
type Store struct {
	DB *database.PostgresDB
}

func NewStore(db *database.PostgresDB) *Store {
	return &Store{DB: db}
}

// ListAll returns every resource with the fields needed for matching.
func (s *Store) ListAll(ctx context.Context) ([]Resource, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), type, public_url, COALESCE(tags, '{}'), created_at
		FROM resources
		ORDER BY created_at ASC
	`
	rows, err := s.DB.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var all []Resource
	for rows.Next() {
		var r Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Type, &r.PublicURL, &r.Tags, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}
	return all, nil
}

// ListRecent returns the newest resources, capped at limit, already projected
// for the response. Used as the fallback when matching finds nothing.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]ResourceResponse, error) {
	query := `
		SELECT id, title, type, public_url
		FROM resources
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.DB.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent resources: %w", err)
	}
	defer rows.Close()

	var out []ResourceResponse
	for rows.Next() {
		var r ResourceResponse
		if err := rows.Scan(&r.ID, &r.Title, &r.Type, &r.URL); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}
	return out, nil
}

// Insert stores a new resource. Used by the seeding CLI.
func (s *Store) Insert(ctx context.Context, r Resource) error {
	query := `
		INSERT INTO resources (id, title, description, type, storage_path, public_url, tags)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7)
	`
	_, err := s.DB.Pool.Exec(ctx, query,
		r.ID, r.Title, r.Description, r.Type, r.StoragePath, r.PublicURL, r.Tags)
	if err != nil {
		return fmt.Errorf("failed to insert resource %q: %w", r.Title, err)
	}
	return nil
}

// SaveQuery appends a row to the query log.
func (s *Store) SaveQuery(ctx context.Context, rec QueryRecord) error {
	query := `
		INSERT INTO queries (id, user_id, query_text, response_text)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.DB.Pool.Exec(ctx, query, rec.ID, rec.UserID, rec.QueryText, rec.ResponseText)
	if err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}
	return nil
}
