// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quick Decide API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(coord)

# Endpoints

Health:

	GET /health

Rooms:

	POST /api/start_vote          - Create a voting room
	GET  /api/vote/{room}         - Join a room (websocket, ?id=<client uuid>)
	GET  /api/vote/{room}/preview - Read-only room summary

# Handler Initialization

The router creates the handler with dependency injection:

	roomHandler := handlers.NewRoomHandler(coord)

Every endpoint runs against the same room coordinator. The websocket
route is the only one not wrapped in request logging; the connection
handler does its own per-command logging instead.
*/
package router
