// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rooms

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/quick-decide/condorcet"
	"github.com/danielhkuo/quick-decide/models"
)

// liveRoom is the in-memory state for a room with at least one open
// connection. The database record is the source of truth; this struct
// only tracks who is connected and caches the computed tally.
type liveRoom struct {
	// One identity may hold several handles (multiple browser tabs).
	clients map[uuid.UUID][]*Handle

	// results mirrors the durable tallied flag. The flag decides whether
	// the vote is done; the cache only avoids recomputing the result.
	results *models.CondorcetTally
}

func newLiveRoom() *liveRoom {
	return &liveRoom{clients: make(map[uuid.UUID][]*Handle)}
}

// updateResultsCache brings the cache in line with the durable tallied
// flag. A populated cache on an untallied room is an invariant violation;
// it is logged and discarded rather than propagated.
func (r *liveRoom) updateResultsCache(rec *models.RoomRecord) {
	if rec.Tallied && r.results == nil {
		r.results = computeTally(rec)
	} else if !rec.Tallied && r.results != nil {
		slog.Error("results cache incorrectly populated, rebuilding from ballots")
		r.results = nil
	}
}

// broadcast pushes a fresh view to every connection in the room. The view
// is computed once per identity; all of an identity's tabs see the same
// thing.
func (r *liveRoom) broadcast(rec *models.RoomRecord) {
	r.updateResultsCache(rec)
	for clientID, handles := range r.clients {
		n := r.notification(clientID, rec)
		for _, h := range handles {
			h.publish(n)
		}
	}
}

func (r *liveRoom) notification(clientID uuid.UUID, rec *models.RoomRecord) models.ClientNotification {
	if rec.Tallied != (r.results != nil) {
		slog.Error("results cache inconsistent",
			"tallied", rec.Tallied,
			"cached", r.results != nil,
		)
		r.results = nil
		r.updateResultsCache(rec)
	}

	var yourVote *models.UserVote
	if v, ok := rec.Votes[clientID.String()]; ok {
		vote := v
		yourVote = &vote
	}

	// Ballots become public only after tallying.
	var results *models.VotingResults
	if r.results != nil {
		votes := make([]models.UserVote, 0, len(rec.Votes))
		for _, v := range rec.Votes {
			votes = append(votes, v)
		}
		results = &models.VotingResults{Tally: *r.results, Votes: votes}
	}

	return models.ClientNotification{
		Status: models.StatusConnected,
		Vote: &models.VoteView{
			Choices:     rec.Choices,
			YourVote:    yourVote,
			BallotCount: len(rec.Votes),
			ClientCount: len(r.clients),
			Results:     results,
		},
	}
}

func computeTally(rec *models.RoomRecord) *models.CondorcetTally {
	ballots := make([][]models.VoteItem, 0, len(rec.Votes))
	for _, v := range rec.Votes {
		ballots = append(ballots, v.Selections)
	}
	tally := condorcet.RankedPairs(len(rec.Choices), ballots)
	return &tally
}
