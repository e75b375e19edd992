// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: sqlite file or postgres connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - RetentionHours: idle-room retention window (default: 24)
  - SweepMinutes: sweeper interval (default: 60)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-retention-hours  Idle room retention
	-sweep-minutes    Sweep interval

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_URL           → -d
	DATABASE_TYPE          → -t
	ROOM_RETENTION_HOURS   → -retention-hours
	SWEEP_INTERVAL_MINUTES → -sweep-minutes

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, the database type
is not sqlite or postgres, or the retention/sweep values are below their
minimums (one hour, one minute).
*/
package cliparse
