package eval

import "github.com/corvid-chess/gambit/pkg/board"

var centerSquares = [4]board.Square{
	board.NewSquare(3, 3), board.NewSquare(3, 4),
	board.NewSquare(4, 3), board.NewSquare(4, 4),
}

// MovePriority assigns an ordering priority to a move: MVV-LVA on captures,
// a large bonus for a pawn reaching the last rank (promotions are always
// queens), and a small center-control bonus. Used by search to try the most
// promising moves first, maximizing alpha-beta cutoffs.
func MovePriority(b *board.Board, m board.Move) int {
	mover := b.PieceAt(m.From)
	captured := b.PieceAt(m.To)

	score := 0
	if !captured.IsEmpty() {
		score += 10*materialValue(captured.Type) - materialValue(mover.Type)
	}

	if mover.Type == board.Pawn {
		if (mover.Color == board.White && m.To.Row == 0) || (mover.Color == board.Black && m.To.Row == 7) {
			score += 9000
		}
	}

	for _, c := range centerSquares {
		if m.To == c {
			score += 50
			break
		}
	}

	return score
}
