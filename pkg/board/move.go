package board

import "fmt"

// Move is a from/to square pair. Promotions are implicit: a pawn reaching
// the last rank always becomes a queen, so no promotion-piece selector
// exists. Castling is a king move of two files; en passant is a diagonal
// pawn move onto an empty square.
type Move struct {
	From, To Square
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) IsZero() bool {
	return m == Move{}
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.From, m.To)
}
