// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rooms

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// RunSweeper periodically refreshes the activity timestamp of every room
// with live connections, then bulk-deletes rooms idle past the retention
// window. Rooms without connections get no refresh and age out. Blocks
// until ctx is cancelled; run it in its own goroutine.
func (c *Coordinator) RunSweeper(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(retention)
		}
	}
}

func (c *Coordinator) sweep(retention time.Duration) {
	start := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for roomID := range c.rooms {
		if err := c.store.TouchRoom(roomID); err != nil {
			slog.Warn("failed to touch live room", "room", roomID, "error", err)
		}
	}

	cutoff := time.Now().Add(-retention)
	deleted, err := c.store.DeleteStale(cutoff)
	if err != nil {
		slog.Error("failed to delete stale rooms", "error", err)
		return
	}
	slog.Info("swept stale rooms",
		"deleted", deleted,
		"live", len(c.rooms),
		"cutoff", humanize.Time(cutoff),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
