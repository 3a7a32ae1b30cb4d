package board_test

import (
	"testing"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.True(t, board.NewSquare(0, 0).IsValid())
	assert.True(t, board.NewSquare(7, 7).IsValid())
	assert.False(t, board.NewSquare(-1, 0).IsValid())
	assert.False(t, board.NewSquare(0, 8).IsValid())
	assert.False(t, board.NewSquare(8, 0).IsValid())

	assert.Equal(t, "e4", board.NewSquare(4, 4).String())
	assert.Equal(t, "a8", board.NewSquare(0, 0).String())
	assert.Equal(t, "h1", board.NewSquare(7, 7).String())
}

func TestSquareIsCorner(t *testing.T) {
	assert.True(t, board.NewSquare(0, 0).IsCorner())
	assert.True(t, board.NewSquare(0, 7).IsCorner())
	assert.True(t, board.NewSquare(7, 0).IsCorner())
	assert.True(t, board.NewSquare(7, 7).IsCorner())
	assert.False(t, board.NewSquare(4, 4).IsCorner())
	assert.False(t, board.NewSquare(0, 1).IsCorner())
}
