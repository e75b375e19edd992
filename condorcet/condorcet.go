// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import (
	"sort"

	"github.com/danielhkuo/quick-decide/models"
)

// defeat records that winner beat loser pairwise.
type defeat struct {
	winner int
	loser  int
}

// RankedPairs computes the result of an election using Tideman's ranked
// pairs method. See http://ericgorr.net/condorcet/rankedpairs/
//
// Ballots may contain out-of-range or duplicate candidate indices; they
// are dropped per ballot before counting (first occurrence wins). The
// result is independent of ballot order and of entry order within a
// ballot. Degenerate input (zero candidates, zero ballots) yields empty
// totals and ranks.
func RankedPairs(numChoices int, ballots [][]models.VoteItem) models.CondorcetTally {
	totals := make([][]int, numChoices)
	for i := range totals {
		totals[i] = make([]int, numChoices)
	}

	// Pairwise totals. totals[a][b] = number of ballots ranking a over b.
	// Equal ranks on a ballot contribute to neither direction.
	for _, raw := range ballots {
		ballot := filterBallot(numChoices, raw)
		sort.SliceStable(ballot, func(i, j int) bool {
			return ballot[i].Rank < ballot[j].Rank
		})
		for i, item := range ballot {
			for _, later := range ballot[i+1:] {
				if later.Rank > item.Rank {
					totals[item.Candidate][later.Candidate]++
				}
			}
		}
	}

	// Every pair with a strict pairwise majority is a candidate defeat,
	// sorted descending by (strength, margin).
	var defeats []defeat
	for a := 0; a < numChoices; a++ {
		for b := 0; b < numChoices; b++ {
			if totals[a][b] > totals[b][a] {
				defeats = append(defeats, defeat{winner: a, loser: b})
			}
		}
	}
	sort.SliceStable(defeats, func(i, j int) bool {
		si, mi := strengthMargin(totals, defeats[i])
		sj, mj := strengthMargin(totals, defeats[j])
		if si != sj {
			return si > sj
		}
		return mi > mj
	})

	// Lock defeats into the graph strongest-first, dropping any that
	// close a cycle. Defeats tied on (strength, margin) are inserted as a
	// batch and only then tested, so the outcome of a tie group does not
	// depend on iteration order within the group.
	graph := make([]map[int]bool, numChoices)
	for i := range graph {
		graph[i] = make(map[int]bool)
	}
	for start := 0; start < len(defeats); {
		end := start
		s0, m0 := strengthMargin(totals, defeats[start])
		for end < len(defeats) {
			s, m := strengthMargin(totals, defeats[end])
			if s != s0 || m != m0 {
				break
			}
			end++
		}
		group := defeats[start:end]
		for _, d := range group {
			graph[d.winner][d.loser] = true
		}
		var cyclic []defeat
		for _, d := range group {
			if isReachable(d.loser, d.winner, graph) {
				cyclic = append(cyclic, d)
			}
		}
		for _, d := range cyclic {
			delete(graph[d.winner], d.loser)
		}
		start = end
	}

	// Extract rank tiers: repeatedly peel off the candidates with no
	// remaining defeater among the unranked set.
	unranked := make([]int, numChoices)
	for i := range unranked {
		unranked[i] = i
	}
	ranks := [][]int{}
	for len(unranked) > 0 {
		var tier []int
		for _, c := range unranked {
			defeated := false
			for _, c2 := range unranked {
				if graph[c2][c] {
					defeated = true
					break
				}
			}
			if !defeated {
				tier = append(tier, c)
			}
		}
		remaining := unranked[:0]
		for _, c := range unranked {
			if !contains(tier, c) {
				remaining = append(remaining, c)
			}
		}
		unranked = remaining
		ranks = append(ranks, tier)
	}

	return models.CondorcetTally{Totals: totals, Ranks: ranks}
}

// filterBallot drops entries with an out-of-range candidate index and all
// but the first entry for each candidate, preserving input order.
// Idempotent: filtering an already-filtered ballot changes nothing.
func filterBallot(numChoices int, ballot []models.VoteItem) []models.VoteItem {
	seen := make([]bool, numChoices)
	kept := make([]models.VoteItem, 0, len(ballot))
	for _, item := range ballot {
		if item.Candidate < 0 || item.Candidate >= numChoices {
			continue
		}
		if seen[item.Candidate] {
			continue
		}
		seen[item.Candidate] = true
		kept = append(kept, item)
	}
	return kept
}

func strengthMargin(totals [][]int, d defeat) (strength, margin int) {
	strength = totals[d.winner][d.loser]
	margin = strength - totals[d.loser][d.winner]
	return strength, margin
}

// isReachable reports whether b can be reached from a by following graph
// edges. Iterative so deep graphs cannot blow the stack.
func isReachable(a, b int, graph []map[int]bool) bool {
	discovered := make(map[int]bool)
	stack := []int{a}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if discovered[node] {
			continue
		}
		if node == b {
			return true
		}
		discovered[node] = true
		for next := range graph[node] {
			stack = append(stack, next)
		}
	}
	return false
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
