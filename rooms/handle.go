// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rooms

import "github.com/danielhkuo/quick-decide/models"

// Handle is one live connection's notification slot. It holds at most the
// single latest room view: a new broadcast replaces any undelivered one,
// so a stalled reader never backs up the broadcaster and only ever misses
// intermediate states, not the most recent one.
type Handle struct {
	ch chan models.ClientNotification
}

func NewHandle() *Handle {
	return &Handle{ch: make(chan models.ClientNotification, 1)}
}

// publish replaces the pending notification. Called only while the
// coordinator lock is held, so there is never more than one writer.
func (h *Handle) publish(n models.ClientNotification) {
	select {
	case <-h.ch:
	default:
	}
	h.ch <- n
}

// Notifications returns the channel the connection task reads views from.
func (h *Handle) Notifications() <-chan models.ClientNotification {
	return h.ch
}
