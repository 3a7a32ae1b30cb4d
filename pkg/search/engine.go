package search

import (
	"time"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/corvid-chess/gambit/pkg/eval"
	"github.com/corvid-chess/gambit/pkg/search/searchctl"
)

// Engine runs iterative-deepening negamax search with alpha-beta pruning
// over a shared transposition table. Not thread-safe; one Engine serves
// one search at a time.
type Engine struct {
	hasher *board.ZobristHasher
	tt     *TranspositionTable
	eval   eval.Evaluator

	clock *searchctl.Clock
	stats Statistics
}

// NewEngine creates an engine with a transposition table sized for
// ttSizeMB megabytes.
func NewEngine(ttSizeMB int) *Engine {
	return &Engine{
		hasher: board.NewZobristHasher(),
		tt:     NewTranspositionTable(ttSizeMB),
	}
}

// SetNoise configures leaf-evaluation randomness: limitMillipawns is the
// range of noise added to each static evaluation, seeded by seed. A limit
// of zero disables noise.
func (e *Engine) SetNoise(limitMillipawns int, seed int64) {
	e.eval = eval.Evaluator{Noise: eval.NewRandom(limitMillipawns, seed)}
}

// ClearTranspositionTable discards all cached search results.
func (e *Engine) ClearTranspositionTable() {
	e.tt.Clear()
}

// Statistics returns diagnostic counters for the most recent Search call.
func (e *Engine) Statistics() Statistics {
	return e.stats
}

// Search performs iterative deepening from depth 1 up to maxDepth,
// returning the best move and score from the last depth that completed
// fully within maxTime. Returns a zero move if the position has no legal
// moves at all.
func (e *Engine) Search(b *board.Board, maxDepth int, maxTime time.Duration) (board.Move, board.Score) {
	start := time.Now()
	e.clock = searchctl.NewClock(maxTime)
	e.stats = Statistics{}

	var bestMove board.Move
	var bestScore board.Score

	for depth := 1; depth <= maxDepth; depth++ {
		if e.clock.Expired() {
			break
		}

		move, score, completed := e.searchRoot(b, depth)
		if completed {
			bestMove = move
			bestScore = score
		}

		if score.IsMate() {
			break
		}
	}

	e.stats.Elapsed = time.Since(start)
	e.stats.TTUsed = e.tt.Used()
	return bestMove, bestScore
}

// searchRoot generates the root's legal moves, orders them, and evaluates
// each via alphaBeta with a full [-inf;+inf] window, tracking the best. It
// stores an Exact entry for the root position on exit. completed is false
// if the position has no legal moves or the clock expired before the loop
// over the root moves ended (in which case move/score are meaningless and
// the caller must not adopt them).
func (e *Engine) searchRoot(b *board.Board, depth int) (move board.Move, score board.Score, completed bool) {
	color := b.CurrentTurn()
	moves := b.GenerateMoves(color)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}

	hash := e.hasher.Hash(b)
	_, _, hashMove, _ := e.tt.Probe(hash, depth, board.NegInf, board.PosInf)
	moves = orderMoves(b, moves, hashMove)

	alpha, beta := board.NegInf, board.PosInf
	best := board.NegInf
	var bestMove board.Move
	any := false

	for _, m := range moves {
		if e.clock.Expired() {
			break
		}

		child := b.Copy()
		child.MakeMove(m)

		s := -e.alphaBeta(child, depth-1, -beta, -alpha, color.Opponent())
		any = true

		if s > best {
			best = s
			bestMove = m
		}
		if s > alpha {
			alpha = s
		}
	}

	if !any || e.clock.Expired() {
		return board.Move{}, 0, false
	}

	e.tt.Store(hash, Entry{Depth: depth, Score: best, Bound: Exact, BestMove: bestMove})
	return bestMove, best, true
}
