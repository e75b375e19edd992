// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quick-decide/cliparse"
	"github.com/danielhkuo/quick-decide/db"
	"github.com/danielhkuo/quick-decide/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a fresh in-memory sqlite database with the schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each :memory: connection is its own database; cap the pool at one
	// so every query sees the same data.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a RoomStore over a fresh in-memory database.
func SetupTestStore(t *testing.T) *db.RoomStore {
	t.Helper()
	return db.NewRoomStore(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3319,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		RetentionHours: 24,
		SweepMinutes:   60,
	}
}

// CreateTestRoom persists a room with the given choices and returns its id.
func CreateTestRoom(t *testing.T, store *db.RoomStore, choices ...string) string {
	t.Helper()

	roomID := "test-room-" + choices[0]
	if err := store.CreateRoom(roomID, choices); err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	return roomID
}

// Ballot builds a UserVote ranking the given candidates best-to-worst.
func Ballot(name string, order ...int) models.UserVote {
	selections := make([]models.VoteItem, len(order))
	for i, candidate := range order {
		selections[i] = models.VoteItem{Candidate: candidate, Rank: i + 1}
	}
	return models.UserVote{Name: name, Selections: selections}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
