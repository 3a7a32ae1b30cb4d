package board_test

import (
	"testing"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestNewBoard(t *testing.T) {
	b := board.New()

	assert.Equal(t, board.White, b.CurrentTurn())
	assert.Equal(t, board.AllCastlingRights, b.Castling())
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, 1, b.FullmoveNumber())

	_, hasEP := b.EnPassantTarget()
	assert.False(t, hasEP)

	assert.Equal(t, board.Piece{Type: board.Rook, Color: board.White}, b.PieceAt(board.NewSquare(7, 0)))
	assert.Equal(t, board.Piece{Type: board.King, Color: board.White}, b.PieceAt(board.NewSquare(7, 4)))
	assert.Equal(t, board.Piece{Type: board.Pawn, Color: board.Black}, b.PieceAt(board.NewSquare(1, 3)))
	assert.True(t, b.PieceAt(board.NewSquare(4, 4)).IsEmpty())

	assert.Equal(t, board.NewSquare(7, 4), b.KingSquare(board.White))
	assert.Equal(t, board.NewSquare(0, 4), b.KingSquare(board.Black))
}

func TestBoardPieceAtOutOfRange(t *testing.T) {
	b := board.New()
	assert.Equal(t, board.NoPiece, b.PieceAt(board.NewSquare(-1, 0)))
	assert.Equal(t, board.NoPiece, b.PieceAt(board.NewSquare(8, 8)))
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := board.New()
	cp := b.Copy()

	cp.MakeMove(board.Move{From: board.NewSquare(6, 4), To: board.NewSquare(4, 4)})

	assert.True(t, b.PieceAt(board.NewSquare(6, 4)).Type == board.Pawn)
	assert.True(t, b.PieceAt(board.NewSquare(4, 4)).IsEmpty())

	assert.True(t, cp.PieceAt(board.NewSquare(6, 4)).IsEmpty())
	assert.Equal(t, board.Pawn, cp.PieceAt(board.NewSquare(4, 4)).Type)
}

func TestBoardDisplayHasRankAndFileLabels(t *testing.T) {
	b := board.New()
	out := b.Display()

	assert.Contains(t, out, "a b c d e f g h")
	assert.Contains(t, out, "8 ")
	assert.Contains(t, out, "1 ")
}
