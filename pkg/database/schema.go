package database

import (
	"context"
	"fmt"
)

func (db *PostgresDB) InitSchema(ctx context.Context) error {
	// 1. Resources Table
	resourcesQuery := `
		CREATE TABLE IF NOT EXISTS resources (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT,
			type TEXT NOT NULL CHECK (type IN ('presentation', 'video')),
			storage_path TEXT,
			public_url TEXT NOT NULL,
			tags TEXT[],
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
	`
	if _, err := db.Pool.Exec(ctx, resourcesQuery); err != nil {
		return fmt.Errorf("failed to create resources table: %w", err)
	}

	// 2. Queries Table (query log)
	queriesQuery := `
		CREATE TABLE IF NOT EXISTS queries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id TEXT NOT NULL,
			query_text TEXT NOT NULL,
			response_text TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
	`
	if _, err := db.Pool.Exec(ctx, queriesQuery); err != nil {
		return fmt.Errorf("failed to create queries table: %w", err)
	}

	// Indexes for faster querying
	if _, err := db.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_resources_created_at ON resources(created_at DESC)"); err != nil {
		return fmt.Errorf("failed to create index on resources: %w", err)
	}
	if _, err := db.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_queries_user_id ON queries(user_id)"); err != nil {
		return fmt.Errorf("failed to create index on queries: %w", err)
	}

	return nil
}
