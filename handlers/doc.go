// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP and websocket handlers for the
Quick Decide API.

# Handler Types

RoomHandler carries the room coordinator dependency and serves every
endpoint:

	roomHandler := handlers.NewRoomHandler(coord)

# Room Lifecycle

A room is created over plain HTTP and then driven entirely over a
websocket:

	POST /api/start_vote           → StartVote (returns room_id)
	GET  /api/vote/{room}          → Connect (websocket, ?id=<client uuid>)
	GET  /api/vote/{room}/preview  → Preview (read-only summary)

# Websocket Protocol

Connect upgrades the request, validates the client-supplied identity
uuid, and registers with the coordinator. The client then sends
commands:

	{"type":"vote","vote":{"name":"Alice","selections":[...]}}
	{"type":"tally"}

Every state change is pushed to all connections as a ClientNotification.
A connection that fails the identity check or names an unknown room
gets a single notification with status invalid_client_id or
invalid_room and is closed.

Malformed commands are dropped without closing the connection; the
session ends on the first read or write failure, and the connection is
pruned from the coordinator on the way out.
*/
package handlers
