// Package eval contains static position evaluation and move-ordering
// heuristics. All scores are centipawns from white's perspective: positive
// favors white.
package eval

import "github.com/corvid-chess/gambit/pkg/board"

// Nominal material values in centipawns, part of the engine's observable
// strength identity.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

func materialValue(t board.PieceType) int {
	switch t {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	case board.King:
		return KingValue
	default:
		return 0
	}
}

// Evaluator is a static position evaluator, optionally perturbed by a small
// amount of noise for replay variety (see Random).
type Evaluator struct {
	Noise Random
}

// Evaluate returns the position score in centipawns from white's
// perspective: material + piece-square placement, mobility, and king
// safety, plus checkmate/stalemate shortcuts.
//
// Terminal detection is kept here deliberately, matching the source this
// engine was distilled from, even though the search already detects empty
// move lists at its own terminal nodes (see DESIGN.md).
func (e Evaluator) Evaluate(b *board.Board) int {
	if b.IsCheckmate(board.White) {
		return -100000
	}
	if b.IsCheckmate(board.Black) {
		return 100000
	}
	if b.IsStalemate(board.White) || b.IsStalemate(board.Black) {
		return 0
	}

	score := materialAndPosition(b)
	score += mobility(b)
	score += kingSafety(b)
	score += e.Noise.Sample()

	return score
}

func materialAndPosition(b *board.Board) int {
	endgame := isEndgame(b)
	score := 0

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.NewSquare(row, col))
			if p.IsEmpty() {
				continue
			}

			value := materialValue(p.Type) + tableFor(p.Type, endgame).at(row, col, p.Color)
			score += value * int(p.Color.Unit())
		}
	}
	return score
}

// isEndgame matches the source's rule: no queens on the board with at most
// six non-king pieces remaining, or at most four non-king pieces remaining
// regardless of queens.
func isEndgame(b *board.Board) bool {
	pieces, queens := 0, 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.NewSquare(row, col))
			if p.IsEmpty() || p.Type == board.King {
				continue
			}
			pieces++
			if p.Type == board.Queen {
				queens++
			}
		}
	}
	return (queens == 0 && pieces <= 6) || pieces <= 4
}

func mobility(b *board.Board) int {
	white := len(b.GenerateMoves(board.White))
	black := len(b.GenerateMoves(board.Black))
	return white - black
}

// kingSafety awards a pawn-shield bonus to each king still on its own back
// rank: +/-10 centipawns per adjacent file (king file and the two
// neighboring files) with a friendly pawn directly in front.
func kingSafety(b *board.Board) int {
	score := 0

	wk := b.KingSquare(board.White)
	if wk.Row == 7 {
		for _, col := range [3]int{int(wk.Col) - 1, int(wk.Col), int(wk.Col) + 1} {
			if col < 0 || col > 7 {
				continue
			}
			p := b.PieceAt(board.NewSquare(6, col))
			if p.Type == board.Pawn && p.Color == board.White {
				score += 10
			}
		}
	}

	bk := b.KingSquare(board.Black)
	if bk.Row == 0 {
		for _, col := range [3]int{int(bk.Col) - 1, int(bk.Col), int(bk.Col) + 1} {
			if col < 0 || col > 7 {
				continue
			}
			p := b.PieceAt(board.NewSquare(1, col))
			if p.Type == board.Pawn && p.Color == board.Black {
				score -= 10
			}
		}
	}

	return score
}
