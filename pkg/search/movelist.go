package search

import (
	"container/heap"

	"github.com/corvid-chess/gambit/pkg/board"
	"github.com/corvid-chess/gambit/pkg/eval"
)

// hashMoveBonus guarantees a present hash move is tried before anything
// else.
const hashMoveBonus = 1_000_000

// orderMoves sorts moves by descending priority: the hash move first (if
// present among them), then by eval.MovePriority (MVV-LVA, promotions,
// center control).
func orderMoves(b *board.Board, moves []board.Move, hashMove board.Move) []board.Move {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		p := eval.MovePriority(b, m)
		if !hashMove.IsZero() && m.Equals(hashMove) {
			p += hashMoveBonus
		}
		h[i] = elm{move: m, priority: p}
	}
	heap.Init(&h)

	ordered := make([]board.Move, 0, len(moves))
	for h.Len() > 0 {
		ordered = append(ordered, heap.Pop(&h).(elm).move)
	}
	return ordered
}

type elm struct {
	move     board.Move
	priority int
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].priority > h[j].priority }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[:n-1]
	return ret
}
