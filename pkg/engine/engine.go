// Package engine is the top-level facade that wires board, eval and search
// together into the playable object a driver (console, CLI, tests) talks
// to. It owns no chess logic itself -- it sequences calls into pkg/board
// and pkg/search under a single mutex.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/corvid-chess/gambit/pkg/board/notation"
	"github.com/corvid-chess/gambit/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation and per-search defaults.
type Options struct {
	// Depth is the default search depth limit. If zero, MaxDepth is used.
	Depth uint
	// Hash is the transposition table size in MB.
	Hash uint
	// Noise adds millipawn randomness to leaf evaluations.
	Noise uint
	// MoveTime is the default per-move search budget.
	MoveTime time.Duration
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, noise=%v, move_time=%v}", o.Depth, o.Hash, o.Noise, o.MoveTime)
}

// MaxDepth bounds iterative deepening when Options.Depth is unset.
const MaxDepth = 64

// Engine encapsulates game-playing logic: a board, a search engine, and the
// bookkeeping to play a game move by move.
type Engine struct {
	name, author string
	opts         Options

	b   *board.Board
	eng *search.Engine

	mu   sync.Mutex
	busy atomic.Bool // guards against overlapping Search calls on the same *search.Engine
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{MoveTime: 5 * time.Second},
	}
	for _, fn := range opts {
		fn(e)
	}

	e.reset(e.opts.Hash)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

func (e *Engine) reset(hashMB uint) {
	size := int(hashMB)
	if size <= 0 {
		size = 1
	}
	e.b = board.New()
	e.eng = search.NewEngine(size)
	if e.opts.Noise > 0 {
		e.eng.SetNoise(int(e.opts.Noise), time.Now().UnixNano())
	}
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetHash(size uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Hash = size
	e.reset(size)
}

func (e *Engine) SetMoveTime(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.MoveTime = d
}

// Board returns a copy of the current position.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Copy()
}

// NewGame resets the engine to the standard starting position.
func (e *Engine) NewGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "New game, depth=%v, TT=%vMB, noise=%vcp", e.opts.Depth, e.opts.Hash, e.opts.Noise/10)

	e.reset(e.opts.Hash)

	logw.Infof(ctx, "New board:\n%v", e.b.Display())
}

// Push applies the given move, given in coordinate notation (e.g. "e2e4"),
// to the current position. It must be legal in the current position.
func (e *Engine) Push(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Push %v", move)

	candidate, err := notation.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	turn := e.b.CurrentTurn()
	for _, m := range e.b.GenerateMoves(turn) {
		if !m.Equals(candidate) {
			continue
		}
		if !e.b.MakeMove(m) {
			return fmt.Errorf("illegal move: %v", m)
		}
		logw.Infof(ctx, "Pushed %v:\n%v", m, e.b.Display())
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// Search runs iterative-deepening search on the current position up to
// maxDepth plies (0 means Options.Depth or MaxDepth) and maxTime (0 means
// Options.MoveTime). It returns the best move found and its score in
// centipawns from the side-to-move's perspective.
func (e *Engine) Search(ctx context.Context, maxDepth int, maxTime time.Duration) (board.Move, int, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return board.Move{}, 0, fmt.Errorf("search already in progress")
	}
	defer e.busy.Store(false)

	e.mu.Lock()
	b := e.b.Copy()
	eng := e.eng
	opts := e.opts
	e.mu.Unlock()

	if maxDepth <= 0 {
		maxDepth = int(opts.Depth)
	}
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	if maxTime <= 0 {
		maxTime = opts.MoveTime
	}

	logw.Infof(ctx, "Search %v, max_depth=%v, max_time=%v", b, maxDepth, maxTime)

	move, score := eng.Search(b, maxDepth, maxTime)
	if move.IsZero() {
		return board.Move{}, 0, fmt.Errorf("no legal move found")
	}

	logw.Infof(ctx, "Search result: %v (%v), %v", move, score, eng.Statistics())
	return move, int(score), nil
}

// Stats returns diagnostic counters for the most recent Search call.
func (e *Engine) Stats() search.Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.eng.Statistics()
}
