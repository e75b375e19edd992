// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rooms

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quick-decide/auth"
	"github.com/danielhkuo/quick-decide/db"
	"github.com/danielhkuo/quick-decide/models"
)

var ErrRoomNotFound = errors.New("room not found")

// Coordinator owns the table of live rooms and serializes every room
// mutation behind one lock, store round trips included. That makes each
// read-modify-write atomic with respect to other operations (no lost
// votes between concurrent submits) at the cost of unrelated rooms
// sharing the lock; shard by room id if that ever becomes the ceiling.
type Coordinator struct {
	mu    sync.Mutex
	rooms map[string]*liveRoom
	store *db.RoomStore
}

// NewCoordinator builds the coordinator. Construct one at startup and
// hand it to every connection handler.
func NewCoordinator(store *db.RoomStore) *Coordinator {
	return &Coordinator{
		rooms: make(map[string]*liveRoom),
		store: store,
	}
}

// CreateRoom persists a fresh empty room and returns its id. No
// in-memory entry is created until the first client connects.
func (c *Coordinator) CreateRoom(choices []string) (string, error) {
	roomID, err := auth.NewRoomID()
	if err != nil {
		return "", err
	}
	if err := c.store.CreateRoom(roomID, choices); err != nil {
		return "", err
	}
	slog.Info("room created", "room", roomID, "choices", len(choices))
	return roomID, nil
}

// Register attaches a connection handle to a room and broadcasts the
// current state to everyone in it, the new handle included. Returns
// ErrRoomNotFound for unknown room ids; other errors are store failures.
func (c *Coordinator) Register(roomID string, clientID uuid.UUID, h *Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.store.ReadRoom(roomID)
	if err != nil {
		return err
	}
	if rec == nil {
		slog.Debug("client gave invalid room", "client", clientID, "room", roomID)
		return ErrRoomNotFound
	}

	if err := c.store.TouchRoom(roomID); err != nil {
		slog.Warn("failed to touch room activity", "room", roomID, "error", err)
	}

	room := c.rooms[roomID]
	if room == nil {
		room = newLiveRoom()
		c.rooms[roomID] = room
	}
	room.clients[clientID] = append(room.clients[clientID], h)
	room.broadcast(rec)
	return nil
}

// SubmitVote upserts the identity's ballot. Resubmission replaces the
// previous ballot; it is not an error. Votes against a tallied room are
// ignored: tallying freezes the ballot set.
func (c *Coordinator) SubmitVote(roomID string, clientID uuid.UUID, vote models.UserVote) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.rooms[roomID]
	if room == nil {
		// Commands only arrive over registered connections, so this
		// means the connection raced room eviction.
		slog.Debug("vote for room with no live state", "room", roomID)
		return nil
	}

	rec, err := c.readRegisteredRoom(roomID)
	if err != nil {
		return err
	}
	if rec.Tallied {
		slog.Debug("ignoring vote for tallied room", "room", roomID, "client", clientID)
		return nil
	}

	rec.Votes[clientID.String()] = vote
	if err := c.writeRegisteredRoom(roomID, rec); err != nil {
		return err
	}
	room.broadcast(rec)
	return nil
}

// Tally marks the room as tallied. The flag is monotone: tallying an
// already-tallied room changes nothing beyond a re-broadcast. The result
// itself is computed lazily on the next view build and then cached.
func (c *Coordinator) Tally(roomID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.rooms[roomID]
	if room == nil {
		slog.Debug("tally for room with no live state", "room", roomID)
		return nil
	}

	rec, err := c.readRegisteredRoom(roomID)
	if err != nil {
		return err
	}
	rec.Tallied = true
	if err := c.writeRegisteredRoom(roomID, rec); err != nil {
		return err
	}
	room.broadcast(rec)
	return nil
}

// Prune removes one connection handle. Identities with no handles left
// are dropped from the registry (their durable ballot stays); a room
// with no handles at all is evicted from memory. Otherwise the remaining
// connections get a fresh view.
func (c *Coordinator) Prune(roomID string, clientID uuid.UUID, h *Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.rooms[roomID]
	if room == nil {
		return
	}

	handles := room.clients[clientID]
	kept := handles[:0]
	for _, other := range handles {
		if other != h {
			kept = append(kept, other)
		}
	}
	if len(kept) == 0 {
		delete(room.clients, clientID)
	} else {
		room.clients[clientID] = kept
	}
	slog.Debug("connection pruned",
		"room", roomID,
		"client", clientID,
		"remaining", len(kept),
	)

	if len(room.clients) == 0 {
		delete(c.rooms, roomID)
		return
	}

	rec, err := c.store.ReadRoom(roomID)
	if err != nil || rec == nil {
		slog.Error("failed to reload room after prune", "room", roomID, "error", err)
		return
	}
	room.broadcast(rec)
}

// RoomInfo is a point-in-time summary for the preview endpoint.
type RoomInfo struct {
	Choices       []string
	BallotCount   int
	IdentityCount int
	Tallied       bool
	LastActive    time.Time
}

// Info summarizes a room without registering a connection.
func (c *Coordinator) Info(roomID string) (*RoomInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.store.ReadRoom(roomID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRoomNotFound
	}
	lastActive, err := c.store.LastActive(roomID)
	if err != nil {
		return nil, err
	}

	identityCount := 0
	if room := c.rooms[roomID]; room != nil {
		identityCount = len(room.clients)
	}
	return &RoomInfo{
		Choices:       rec.Choices,
		BallotCount:   len(rec.Votes),
		IdentityCount: identityCount,
		Tallied:       rec.Tallied,
		LastActive:    lastActive,
	}, nil
}

// readRegisteredRoom reads a room the registry believes exists. A missing
// record here is an invariant violation: log it, drop the stale in-memory
// entry, and report the room as gone rather than panicking.
func (c *Coordinator) readRegisteredRoom(roomID string) (*models.RoomRecord, error) {
	rec, err := c.store.ReadRoom(roomID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		slog.Error("room in registry but missing from store", "room", roomID)
		delete(c.rooms, roomID)
		return nil, ErrRoomNotFound
	}
	return rec, nil
}

func (c *Coordinator) writeRegisteredRoom(roomID string, rec *models.RoomRecord) error {
	ok, err := c.store.WriteRoom(roomID, rec)
	if err != nil {
		return err
	}
	if !ok {
		slog.Error("room vanished during write", "room", roomID)
		delete(c.rooms, roomID)
		return ErrRoomNotFound
	}
	return nil
}
