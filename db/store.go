// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/quick-decide/models"
)

// currentStateVersion tags every stored room payload so older records
// stay readable after format changes.
const currentStateVersion = 1

// roomState is the stored shape of a room record.
type roomState struct {
	Version int                        `json:"version"`
	Choices []string                   `json:"choices"`
	Votes   map[string]models.UserVote `json:"votes"`
	Tallied bool                       `json:"tallied"`
}

// RoomStore persists room records. It is the source of truth for room
// existence, ballots, and tallied status; the coordinator's in-memory
// state is only a cache over it.
type RoomStore struct {
	db *sql.DB
}

func NewRoomStore(db *sql.DB) *RoomStore {
	return &RoomStore{db: db}
}

// CreateRoom inserts a fresh room with no votes.
func (s *RoomStore) CreateRoom(id string, choices []string) error {
	state, err := encodeState(&models.RoomRecord{
		Choices: choices,
		Votes:   make(map[string]models.UserVote),
		Tallied: false,
	})
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO room (id, state, last_active)
		VALUES ($1, $2, $3)
	`, id, state, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

// ReadRoom returns the room record, or nil if no such room exists.
// A non-nil error means the store itself failed (or the payload is
// corrupt) and the caller must not treat the room as missing.
func (s *RoomStore) ReadRoom(id string) (*models.RoomRecord, error) {
	var state []byte
	err := s.db.QueryRow(`
		SELECT state FROM room WHERE id = $1
	`, id).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", id, err)
	}

	rec, err := decodeState(state)
	if err != nil {
		return nil, fmt.Errorf("failed to decode room %s state: %w", id, err)
	}
	return rec, nil
}

// WriteRoom replaces the room state and refreshes its activity timestamp.
// Returns false if the room no longer exists (deleted by the sweeper
// between read and write).
func (s *RoomStore) WriteRoom(id string, rec *models.RoomRecord) (bool, error) {
	state, err := encodeState(rec)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(`
		UPDATE room SET state = $1, last_active = $2 WHERE id = $3
	`, state, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update room %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update room %s: %w", id, err)
	}
	return n == 1, nil
}

// TouchRoom refreshes the activity timestamp without changing state.
func (s *RoomStore) TouchRoom(id string) error {
	_, err := s.db.Exec(`
		UPDATE room SET last_active = $1 WHERE id = $2
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to touch room %s: %w", id, err)
	}
	return nil
}

// LastActive returns the room's activity timestamp.
func (s *RoomStore) LastActive(id string) (time.Time, error) {
	var t time.Time
	err := s.db.QueryRow(`
		SELECT last_active FROM room WHERE id = $1
	`, id).Scan(&t)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read room %s activity: %w", id, err)
	}
	return t, nil
}

// DeleteStale removes every room whose last activity is before cutoff,
// connected or not, and returns how many were deleted.
func (s *RoomStore) DeleteStale(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`
		DELETE FROM room WHERE last_active < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale rooms: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale rooms: %w", err)
	}
	return n, nil
}

func encodeState(rec *models.RoomRecord) ([]byte, error) {
	data, err := json.Marshal(roomState{
		Version: currentStateVersion,
		Choices: rec.Choices,
		Votes:   rec.Votes,
		Tallied: rec.Tallied,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode room state: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*models.RoomRecord, error) {
	var state roomState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	switch state.Version {
	case 1:
		votes := state.Votes
		if votes == nil {
			votes = make(map[string]models.UserVote)
		}
		return &models.RoomRecord{
			Choices: state.Choices,
			Votes:   votes,
			Tallied: state.Tallied,
		}, nil
	default:
		return nil, fmt.Errorf("unknown room state version %d", state.Version)
	}
}
