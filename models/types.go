// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Client status constants sent in every notification. invalid_room and
// invalid_client_id are deliberately distinct values: clients branch on them.
const (
	StatusConnected       = "connected"
	StatusInvalidRoom     = "invalid_room"
	StatusInvalidClientID = "invalid_client_id"
)

// Command type constants
const (
	CommandVote  = "vote"
	CommandTally = "tally"
)

// Request types

type CreateRoomRequest struct {
	// Newline-delimited choice labels; blank lines are discarded.
	Choices string `json:"choices"`
}

// Response types

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
}

type RoomPreviewResponse struct {
	Choices       []string `json:"choices"`
	BallotCount   int      `json:"ballot_count"`
	IdentityCount int      `json:"identity_count"`
	Tallied       bool     `json:"tallied"`
	LastActive    string   `json:"last_active"`
}

// Domain types

// VoteItem is one ranked entry on a ballot. Lower rank is better; equal
// ranks are an explicit tie between those candidates on that ballot.
type VoteItem struct {
	Candidate int `json:"candidate"`
	Rank      int `json:"rank"`
}

// UserVote is a single identity's ballot. Selections may omit candidates
// (partial ranking) and their order carries no meaning.
type UserVote struct {
	Name       string     `json:"name"`
	Selections []VoteItem `json:"selections"`
}

// RoomRecord is the durable room state. The database is the source of
// truth; in-memory room state is a cache over it.
type RoomRecord struct {
	Choices []string            `json:"choices"`
	Votes   map[string]UserVote `json:"votes"`
	Tallied bool                `json:"tallied"`
}

// CondorcetTally is the result of a ranked-pairs election.
type CondorcetTally struct {
	// Totals[a][b] is the number of ballots ranking candidate a over b.
	Totals [][]int `json:"totals"`
	// Ranks[0] holds the winner(s); Ranks[n] holds the winners after
	// removing the members of all previous ranks.
	Ranks [][]int `json:"ranks"`
}

// Websocket message types

// Command is the closed set of inbound client commands, decoded once at
// the connection boundary. Unknown types are a client-input error, not a
// crash.
type Command struct {
	Type string    `json:"type"`
	Vote *UserVote `json:"vote,omitempty"`
}

// VotingResults is only populated after the room is tallied. Exposing all
// ballots post-tally is intentional (transparency); pre-tally ballots are
// never shown to other identities.
type VotingResults struct {
	Tally CondorcetTally `json:"tally"`
	Votes []UserVote     `json:"votes"`
}

type VoteView struct {
	Choices     []string       `json:"choices"`
	YourVote    *UserVote      `json:"your_vote,omitempty"`
	BallotCount int            `json:"ballot_count"`
	ClientCount int            `json:"client_count"`
	Results     *VotingResults `json:"results,omitempty"`
}

// ClientNotification is the single outbound message shape. Vote is nil
// when Status is not StatusConnected.
type ClientNotification struct {
	Status string    `json:"status"`
	Vote   *VoteView `json:"vote,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
