// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quick-decide/middleware"
	"github.com/danielhkuo/quick-decide/models"
	"github.com/danielhkuo/quick-decide/rooms"
)

type RoomHandler struct {
	coord *rooms.Coordinator
}

func NewRoomHandler(coord *rooms.Coordinator) *RoomHandler {
	return &RoomHandler{coord: coord}
}

// StartVote handles POST /api/start_vote
func (h *RoomHandler) StartVote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	choices := splitChoices(req.Choices)
	if len(choices) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choices are required")
		return
	}

	roomID, err := h.coord.CreateRoom(choices)
	if err != nil {
		slog.Error("failed to create room", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		RoomID: roomID,
	})
}

// Preview handles GET /api/vote/{room}/preview. Summarizes a room for
// link previews without joining it.
func (h *RoomHandler) Preview(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("room")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	info, err := h.coord.Info(roomID)
	if err == rooms.ErrRoomNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		slog.Error("failed to load room preview", "room", roomID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoomPreviewResponse{
		Choices:       info.Choices,
		BallotCount:   info.BallotCount,
		IdentityCount: info.IdentityCount,
		Tallied:       info.Tallied,
		LastActive:    humanize.Time(info.LastActive),
	})
}

// splitChoices turns the newline-delimited choices field into labels,
// trimming whitespace and dropping blank lines.
func splitChoices(raw string) []string {
	var choices []string
	for _, line := range strings.Split(raw, "\n") {
		if label := strings.TrimSpace(line); label != "" {
			choices = append(choices, label)
		}
	}
	return choices
}
