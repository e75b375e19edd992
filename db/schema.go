// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect both sqlite and postgres accept;
// timestamps are always written from Go rather than via DB defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Voting rooms. state is a versioned JSON document (see store.go);
-- last_active drives retention sweeping.
CREATE TABLE IF NOT EXISTS room (
    id TEXT PRIMARY KEY,
    state TEXT NOT NULL,
    last_active TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_room_last_active ON room(last_active);
`
