// Package search implements iterative-deepening negamax search with
// alpha-beta pruning over a Zobrist-keyed transposition table.
package search

import (
	"fmt"

	"github.com/corvid-chess/gambit/pkg/board"
)

// entryBytes is the assumed per-entry footprint used to convert a caller-
// supplied MB budget into a maximum entry count.
const entryBytes = 40

// Bound indicates what kind of bound a stored score represents.
type Bound uint8

const (
	// Exact is the true minimax value of the subtree.
	Exact Bound = iota
	// LowerBound means a beta cutoff occurred; the true value is >= score.
	LowerBound
	// UpperBound means no move raised alpha; the true value is <= score.
	UpperBound
)

func (f Bound) String() string {
	switch f {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "?"
	}
}

// Entry is a stored search result for one position.
type Entry struct {
	Depth    int
	Score    board.Score
	Bound    Bound
	BestMove board.Move
}

// TranspositionTable is a bounded hash -> Entry cache with depth-preferred
// replacement and arbitrary-victim eviction once full. Not thread-safe: it
// is owned exclusively by one in-flight Engine.Search call.
type TranspositionTable struct {
	table        map[board.ZobristHash]Entry
	maxEntries   int
	hits, misses int
}

// NewTranspositionTable allocates a table sized to hold roughly sizeMB
// megabytes, assuming entryBytes per entry.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	max := (sizeMB * 1024 * 1024) / entryBytes
	if max < 1 {
		max = 1
	}
	return &TranspositionTable{
		table:      make(map[board.ZobristHash]Entry),
		maxEntries: max,
	}
}

// Store inserts an entry, but only overwrites an existing one if the new
// depth is at least as deep (depth-preferred replacement). If the table is
// at capacity, one arbitrary entry is evicted first.
func (t *TranspositionTable) Store(hash board.ZobristHash, e Entry) {
	if existing, ok := t.table[hash]; ok && existing.Depth > e.Depth {
		return
	}
	if _, ok := t.table[hash]; !ok && len(t.table) >= t.maxEntries {
		for k := range t.table {
			delete(t.table, k)
			break
		}
	}
	t.table[hash] = e
}

// Probe implements the lookup contract:
//   - no entry: miss
//   - stored depth >= requested depth and the bound permits a cutoff:
//     return (score, bestMove)
//   - stored depth insufficient, but a best move is recorded: return
//     (no score, bestMove) -- still useful for move ordering
//   - otherwise: miss
func (t *TranspositionTable) Probe(hash board.ZobristHash, depth int, alpha, beta board.Score) (score board.Score, hasScore bool, best board.Move, hasMove bool) {
	e, ok := t.table[hash]
	if !ok {
		t.misses++
		return 0, false, board.Move{}, false
	}

	if e.Depth >= depth {
		switch {
		case e.Bound == Exact:
			t.hits++
			return e.Score, true, e.BestMove, !e.BestMove.IsZero()
		case e.Bound == LowerBound && e.Score >= beta:
			t.hits++
			return e.Score, true, e.BestMove, !e.BestMove.IsZero()
		case e.Bound == UpperBound && e.Score <= alpha:
			t.hits++
			return e.Score, true, e.BestMove, !e.BestMove.IsZero()
		}
	}

	t.misses++
	if !e.BestMove.IsZero() {
		return 0, false, e.BestMove, true
	}
	return 0, false, board.Move{}, false
}

// Clear empties the table and resets the hit/miss counters.
func (t *TranspositionTable) Clear() {
	t.table = make(map[board.ZobristHash]Entry)
	t.hits, t.misses = 0, 0
}

// Size returns the table's configured capacity in bytes.
func (t *TranspositionTable) Size() uint64 {
	return uint64(t.maxEntries) * entryBytes
}

// Used returns the current occupancy as a fraction in [0;1].
func (t *TranspositionTable) Used() float64 {
	if t.maxEntries == 0 {
		return 0
	}
	return float64(len(t.table)) / float64(t.maxEntries)
}

// Hits and Misses report cumulative probe outcomes, for diagnostics.
func (t *TranspositionTable) Hits() int   { return t.hits }
func (t *TranspositionTable) Misses() int { return t.misses }

func (t *TranspositionTable) String() string {
	return fmt.Sprintf("TT[%v entries, %v%% used, hits=%v misses=%v]", len(t.table), int(100*t.Used()), t.hits, t.misses)
}
