package search_test

import (
	"testing"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/corvid-chess/gambit/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableMissOnEmpty(t *testing.T) {
	tt := search.NewTranspositionTable(1)

	_, hasScore, _, hasMove := tt.Probe(0x1234, 4, board.NegInf, board.PosInf)
	assert.False(t, hasScore)
	assert.False(t, hasMove)
	assert.Equal(t, 1, tt.Misses())
}

func TestTranspositionTableExactHit(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	move := board.Move{From: board.NewSquare(6, 4), To: board.NewSquare(4, 4)}

	tt.Store(0xABCD, search.Entry{Depth: 4, Score: 50, Bound: search.Exact, BestMove: move})

	score, hasScore, best, hasMove := tt.Probe(0xABCD, 4, board.NegInf, board.PosInf)
	assert.True(t, hasScore)
	assert.Equal(t, board.Score(50), score)
	assert.True(t, hasMove)
	assert.Equal(t, move, best)
}

func TestTranspositionTableDepthPreferredReplacement(t *testing.T) {
	tt := search.NewTranspositionTable(1)

	tt.Store(0x1, search.Entry{Depth: 6, Score: 10, Bound: search.Exact})
	tt.Store(0x1, search.Entry{Depth: 3, Score: 99, Bound: search.Exact})

	score, hasScore, _, _ := tt.Probe(0x1, 6, board.NegInf, board.PosInf)
	assert.True(t, hasScore)
	assert.Equal(t, board.Score(10), score, "shallower store must not overwrite a deeper entry")
}

func TestTranspositionTableLowerBoundCutoff(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	tt.Store(0x2, search.Entry{Depth: 4, Score: 100, Bound: search.LowerBound})

	score, hasScore, _, _ := tt.Probe(0x2, 4, board.NegInf, 50)
	assert.True(t, hasScore)
	assert.Equal(t, board.Score(100), score)
}

func TestTranspositionTableUpperBoundNoCutoffAboveAlpha(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	tt.Store(0x3, search.Entry{Depth: 4, Score: 10, Bound: search.UpperBound})

	// An upper bound of 10 only resolves a window whose alpha is >= 10;
	// with alpha=5 the stored bound is too loose to produce a cutoff.
	_, hasScore, _, _ := tt.Probe(0x3, 4, 5, board.PosInf)
	assert.False(t, hasScore)
}

func TestTranspositionTableClear(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	tt.Store(0x4, search.Entry{Depth: 1, Score: 1, Bound: search.Exact})
	tt.Clear()

	_, hasScore, _, hasMove := tt.Probe(0x4, 1, board.NegInf, board.PosInf)
	assert.False(t, hasScore)
	assert.False(t, hasMove)
	assert.Equal(t, 0, tt.Hits())
}
