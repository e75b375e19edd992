// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and wire types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: newline-delimited choice labels
  - Command: websocket command envelope (type + optional vote)

# Response Types

Types for JSON responses:

  - CreateRoomResponse: room_id
  - RoomPreviewResponse: choices, ballot_count, identity_count, tallied, last_active
  - ClientNotification: status + optional VoteView, pushed on every room change
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - VoteItem: one (candidate, rank) entry on a ballot
  - UserVote: a voter's full ballot
  - RoomRecord: the durable room state (choices, votes, tallied)
  - CondorcetTally: pairwise totals matrix and rank tiers
  - VoteView: what a single identity is allowed to see of the room

# Constants

Notification statuses:

	StatusConnected       = "connected"
	StatusInvalidRoom     = "invalid_room"
	StatusInvalidClientID = "invalid_client_id"

Command types:

	CommandVote  = "vote"
	CommandTally = "tally"

# Visibility Rules

VoteView only ever carries the requesting identity's own ballot until the
room is tallied. After tallying, Results carries the cached tally plus
every submitted ballot.
*/
package models
