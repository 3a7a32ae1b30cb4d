package eval_test

import (
	"testing"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/corvid-chess/gambit/pkg/board/notation"
	"github.com/corvid-chess/gambit/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b := board.New()
	var e eval.Evaluator

	assert.Equal(t, 0, e.Evaluate(b))
}

func TestEvaluateCheckmateShortcuts(t *testing.T) {
	b := board.New()
	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := notation.ParseMove(s)
		require.NoError(t, err)
		require.True(t, b.MakeMove(m))
	}

	var e eval.Evaluator
	assert.Equal(t, -100000, e.Evaluate(b))
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	b := board.NewFromPlacements(board.Black, []board.Placement{
		{Square: board.NewSquare(0, 0), Piece: board.Piece{Type: board.King, Color: board.Black}},
		{Square: board.NewSquare(1, 2), Piece: board.Piece{Type: board.King, Color: board.White}},
		{Square: board.NewSquare(2, 1), Piece: board.Piece{Type: board.Queen, Color: board.White}},
	}, board.CastlingRights{}, board.Square{}, false)

	var e eval.Evaluator
	assert.Equal(t, 0, e.Evaluate(b))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	kings := func(extra ...board.Placement) []board.Placement {
		base := []board.Placement{
			{Square: board.NewSquare(7, 4), Piece: board.Piece{Type: board.King, Color: board.White}},
			{Square: board.NewSquare(0, 4), Piece: board.Piece{Type: board.King, Color: board.Black}},
		}
		return append(base, extra...)
	}

	even := board.NewFromPlacements(board.White, kings(), board.CastlingRights{}, board.Square{}, false)
	up := board.NewFromPlacements(board.White, kings(board.Placement{
		Square: board.NewSquare(4, 4), Piece: board.Piece{Type: board.Queen, Color: board.White},
	}), board.CastlingRights{}, board.Square{}, false)

	var e eval.Evaluator
	assert.Greater(t, e.Evaluate(up), e.Evaluate(even))
}

func TestRandomZeroLimitIsDeterministic(t *testing.T) {
	n := eval.NewRandom(0, 1)
	assert.Equal(t, 0, n.Sample())

	var zero eval.Random
	assert.Equal(t, 0, zero.Sample())
}

func TestMovePriorityRewardsCenterControl(t *testing.T) {
	b := board.New()
	m, err := notation.ParseMove("e2e4")
	require.NoError(t, err)

	center := eval.MovePriority(b, m)
	assert.Greater(t, center, 0)
}
