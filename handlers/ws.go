// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quick-decide/models"
	"github.com/danielhkuo/quick-decide/rooms"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Room ids are unguessable capability tokens; origin checks add
	// nothing and would break native clients.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connect handles GET /api/vote/{room}. It upgrades to a websocket,
// registers the connection with the coordinator, and then runs the
// connection loop: inbound commands are dispatched, coordinator
// broadcasts are written out, and the first read or write failure ends
// the session.
func (h *RoomHandler) Connect(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("room")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Debug("websocket upgrade failed", "room", roomID, "error", err)
		return
	}
	defer conn.Close()

	clientID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		conn.WriteJSON(models.ClientNotification{Status: models.StatusInvalidClientID})
		return
	}

	handle := rooms.NewHandle()
	if err := h.coord.Register(roomID, clientID, handle); err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			conn.WriteJSON(models.ClientNotification{Status: models.StatusInvalidRoom})
		} else {
			slog.Error("failed to register connection", "room", roomID, "error", err)
		}
		return
	}
	defer h.coord.Prune(roomID, clientID, handle)

	slog.Info("client connected", "room", roomID, "client", clientID)

	done := make(chan struct{})
	defer close(done)
	inbound := make(chan models.Command)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			// A frame that is not valid JSON is a client bug, not a
			// reason to drop the connection.
			var cmd models.Command
			if err := json.Unmarshal(data, &cmd); err != nil {
				slog.Debug("ignoring malformed command", "room", roomID, "client", clientID, "error", err)
				continue
			}
			select {
			case inbound <- cmd:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case n := <-handle.Notifications():
			if err := conn.WriteJSON(n); err != nil {
				slog.Debug("dropping connection on write failure",
					"room", roomID, "client", clientID, "error", err)
				return
			}
		case cmd := <-inbound:
			h.dispatch(roomID, clientID, cmd)
		case err := <-readErr:
			slog.Debug("client disconnected", "room", roomID, "client", clientID, "error", err)
			return
		}
	}
}

// dispatch executes one client command. Malformed or unknown commands
// are logged and dropped; they never take the connection down.
func (h *RoomHandler) dispatch(roomID string, clientID uuid.UUID, cmd models.Command) {
	start := time.Now()

	switch cmd.Type {
	case models.CommandVote:
		if cmd.Vote == nil {
			slog.Debug("vote command without a ballot", "room", roomID, "client", clientID)
			return
		}
		if err := h.coord.SubmitVote(roomID, clientID, *cmd.Vote); err != nil {
			slog.Error("failed to submit vote", "room", roomID, "client", clientID, "error", err)
			return
		}
	case models.CommandTally:
		if err := h.coord.Tally(roomID); err != nil {
			slog.Error("failed to tally room", "room", roomID, "error", err)
			return
		}
	default:
		slog.Debug("unrecognized command", "room", roomID, "client", clientID, "type", cmd.Type)
		return
	}

	slog.Info("command handled",
		"type", cmd.Type,
		"room", roomID,
		"client", clientID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
