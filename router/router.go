// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quick-decide/handlers"
	"github.com/danielhkuo/quick-decide/middleware"
	"github.com/danielhkuo/quick-decide/rooms"
)

func NewRouter(coord *rooms.Coordinator) *http.ServeMux {
	mux := http.NewServeMux()

	roomHandler := handlers.NewRoomHandler(coord)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Room creation
	mux.HandleFunc("POST /api/start_vote", middleware.WithLogging(roomHandler.StartVote))

	// Room session (websocket). Not wrapped in WithLogging: the request
	// lives as long as the connection and would log a bogus duration.
	mux.HandleFunc("GET /api/vote/{room}", roomHandler.Connect)

	// Read-only room summary for link previews
	mux.HandleFunc("GET /api/vote/{room}/preview", middleware.WithLogging(roomHandler.Preview))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quick-decide API v1"))
	})

	return mux
}
