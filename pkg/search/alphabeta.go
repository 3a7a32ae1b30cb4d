package search

import (
	"github.com/corvid-chess/gambit/pkg/board"
)

// alphaBeta returns the negamax value of b from the perspective of color,
// searched to the given depth within window (alpha, beta]. It consults and
// updates the transposition table, and counts nodes/cutoffs/TT hits into
// e.stats as it goes.
//
// Time exhaustion is checked at entry, before each move, and once more
// before the result is stored: an expired clock returns the abortive value
// 0 without touching the transposition table (at entry, before any node
// counting, TT lookup, or evaluation). Every enclosing frame sees the same
// expired clock and returns 0 as well, so a caller never has to distinguish
// "this subtree returned a real zero" from "this subtree was aborted" --
// the root loop discards the whole iteration instead.
func (e *Engine) alphaBeta(b *board.Board, depth int, alpha, beta board.Score, color board.Color) board.Score {
	if e.clock.Expired() {
		return 0
	}
	e.stats.NodesSearched++

	hash := e.hasher.Hash(b)
	var hashMove board.Move
	if depth > 0 {
		if score, hasScore, move, hasMove := e.tt.Probe(hash, depth, alpha, beta); hasScore {
			e.stats.TTHits++
			return score
		} else {
			if hasMove {
				hashMove = move
			}
			e.stats.TTMisses++
		}
	}

	if depth <= 0 {
		return board.Score(sideToScore(e.eval.Evaluate(b), color))
	}

	// A terminal position is detected for free off the move list generated
	// below, rather than by separately calling IsCheckmate/IsStalemate
	// (each of which would generate the same moves again). A mate found
	// shallower in the tree is preferred over one found deeper: depth
	// counts plies remaining, so subtracting it makes a mate-in-1 score
	// higher than a mate-in-3 one, and the root picks the faster mate.
	moves := b.GenerateMoves(color)
	if len(moves) == 0 {
		if b.IsChecked(color) {
			return -board.MateScore - board.Score(depth)
		}
		return 0
	}
	moves = orderMoves(b, moves, hashMove)

	origAlpha := alpha
	best := board.NegInf
	var bestMove board.Move

	for _, m := range moves {
		if e.clock.Expired() {
			break
		}

		child := b.Copy()
		child.MakeMove(m)

		s := -e.alphaBeta(child, depth-1, -beta, -alpha, color.Opponent())
		if s > best {
			best = s
			bestMove = m
		}
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			e.stats.Cutoffs++
			break
		}
	}

	if e.clock.Expired() {
		return 0
	}

	var bound Bound
	switch {
	case best <= origAlpha:
		bound = UpperBound
	case best >= beta:
		bound = LowerBound
	default:
		bound = Exact
	}
	e.tt.Store(hash, Entry{Depth: depth, Score: best, Bound: bound, BestMove: bestMove})

	return best
}

// sideToScore converts an evaluation computed from White's perspective
// (positive favors White) into the negamax perspective of color.
func sideToScore(centipawns int, color board.Color) int {
	if color == board.White {
		return centipawns
	}
	return -centipawns
}
