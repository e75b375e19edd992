// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rooms coordinates live voting rooms.

# Coordinator

The Coordinator owns the in-memory table of rooms with open connections
and is the only writer of durable room state:

	coord := rooms.NewCoordinator(store)
	roomID, err := coord.CreateRoom(choices)
	err = coord.Register(roomID, clientID, handle)
	err = coord.SubmitVote(roomID, clientID, vote)
	err = coord.Tally(roomID)
	coord.Prune(roomID, clientID, handle)

Every operation takes one process-wide lock for its full duration,
including the store round trip, so room mutations are serializable and
concurrent submits never lose votes.

# Identities and Handles

A client identity (UUID, chosen by the client, stable across reconnects)
owns the ballot. A Handle is one live connection; an identity with three
tabs open has three handles and all of them receive the identity's view.

# Broadcast Fan-out

Handles are single-slot, latest-value-wins notification cells, not
queues. Broadcasts happen before the coordinator lock is released, so all
observers see state transitions in the order they were applied; a slow
connection may skip intermediate views but never sees a stale final one.

# Results Cache

The durable tallied flag decides whether voting is done. The in-memory
tally result only avoids recomputation; any disagreement between flag and
cache is logged as an error and the cache is rebuilt from the ballots.

# Retention Sweeper

RunSweeper keeps connected rooms' activity timestamps fresh and deletes
rooms idle past the retention window (default 24h, hourly sweep).
*/
package rooms
