// Package notation converts between the engine's internal (row, col)
// orientation and long algebraic notation at the board's external boundary.
// This is the only place rank inversion happens: rank 1..8 maps to row
// 7..0, file a..h maps to col 0..7.
package notation

import (
	"fmt"

	"github.com/corvid-chess/gambit/pkg/board"
)

// ParseMove parses a move in long algebraic coordinate notation, such as
// "e2e4". It carries no contextual information: whether the move is a
// castle, a capture, or an en-passant capture is determined later by
// Board.MakeMove against the actual position.
func ParseMove(s string) (board.Move, error) {
	if len(s) != 4 {
		return board.Move{}, fmt.Errorf("invalid move %q: want 4 characters", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return board.Move{From: from, To: to}, nil
}

// ParseSquare parses a single algebraic square such as "e4".
func ParseSquare(s string) (board.Square, error) {
	if len(s) != 2 {
		return board.Square{}, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return board.Square{}, fmt.Errorf("invalid square %q", s)
	}
	col := int(file - 'a')
	row := 7 - int(rank-'1')
	return board.NewSquare(row, col), nil
}

// FormatMove renders a move as long algebraic notation, e.g. "e2e4".
func FormatMove(m board.Move) string {
	return m.String()
}
