// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package condorcet implements the ranked pairs (Tideman) election method.

# Usage

	tally := condorcet.RankedPairs(len(choices), ballots)
	winners := tally.Ranks[0]

The function is pure: it holds no state, touches no storage, and is safe
to call from any goroutine.

# Algorithm

 1. Per ballot, drop out-of-range and duplicate candidate entries.
 2. Count pairwise preferences into an NxN totals matrix. Equal ranks on
    a ballot express a tie and count for neither candidate.
 3. Sort pairwise defeats by strength (votes for the winner), then margin.
 4. Lock defeats into a directed graph strongest-first, skipping any that
    would create a cycle. Defeats tied on strength and margin are inserted
    together and tested together, which keeps the result independent of
    their relative order.
 5. Peel off undefeated candidates into rank tiers until none remain.

Tiers can hold several candidates on exact ties, including tier 0.
*/
package condorcet
