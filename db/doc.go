// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and room persistence.

# Schema Creation

CreateSchema initializes the room table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The DDL works unchanged
on both supported drivers (modernc.org/sqlite and lib/pq).

# Room Store

RoomStore wraps *sql.DB with the five operations the coordinator needs:

	store := db.NewRoomStore(conn)
	store.CreateRoom(id, choices)
	rec, err := store.ReadRoom(id)       // nil record = room absent
	ok, err := store.WriteRoom(id, rec)  // false = room vanished
	store.TouchRoom(id)
	store.DeleteStale(cutoff)

ReadRoom distinguishes "absent" (nil, nil) from "store failed" (nil, err)
so callers never mistake an outage for a missing room.

# State Versioning

Room state is stored as JSON with a version tag:

	{"version": 1, "choices": [...], "votes": {...}, "tallied": false}

decodeState switches on the tag, so old records stay readable after a
format change; an unknown version is an error, never a silent reset.

# Concurrency

RoomStore performs no locking of its own. The coordinator serializes all
read-modify-write sequences on a room behind its process-wide lock.
*/
package db
