// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quick Decide API server.

Quick Decide is a small-group decision service: someone creates a room
with a list of choices, shares the link, everyone ranks the choices
over a live websocket, and a ranked-pairs (Condorcet) tally picks the
winner. Ballots stay private until the room is tallied.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=rooms.db go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ROOM_RETENTION_HOURS (-retention-hours): idle-room lifetime (default: 24)
  - SWEEP_INTERVAL_MINUTES (-sweep-minutes): sweeper interval (default: 60)

A .env file in the working directory is loaded at startup; real
environment variables take precedence.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP and websocket request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and room state types
  - rooms: Room coordinator, broadcast fan-out, retention sweeper
  - condorcet: Ranked-pairs tally
  - auth: Room id generation
  - db: Schema creation and the room store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
