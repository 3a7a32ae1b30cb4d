package board

// knightOffsets and kingOffsets are the fixed-shape jump tables shared by
// move generation and attack detection.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// IsSquareAttacked reports whether a piece of byColor could capture onto
// (row,col) in one ply, ignoring whether doing so would itself be illegal.
// It radiates out from the target square rather than scanning the whole
// board: knight jumps, the two pawn-attack squares, the four rook rays, the
// four bishop rays, and the eight king-adjacent squares.
func (b *Board) IsSquareAttacked(row, col int, byColor Color) bool {
	sq := NewSquare(row, col)
	if !sq.IsValid() {
		return false
	}

	// Pawns: a by-color pawn attacks (row,col) from one rank "forward" of
	// the attacker's perspective, i.e. for a white attacker the attacking
	// pawn sits at (row+1, col±1).
	pawnRow := row + 1
	if byColor == Black {
		pawnRow = row - 1
	}
	for _, dc := range [2]int{-1, 1} {
		from := NewSquare(pawnRow, col+dc)
		if from.IsValid() {
			if p := b.PieceAt(from); p.Type == Pawn && p.Color == byColor {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		from := NewSquare(row+o[0], col+o[1])
		if from.IsValid() {
			if p := b.PieceAt(from); p.Type == Knight && p.Color == byColor {
				return true
			}
		}
	}

	for _, d := range rookDirs {
		if b.rayHits(row, col, d[0], d[1], byColor, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if b.rayHits(row, col, d[0], d[1], byColor, Bishop, Queen) {
			return true
		}
	}

	for _, o := range kingOffsets {
		from := NewSquare(row+o[0], col+o[1])
		if from.IsValid() {
			if p := b.PieceAt(from); p.Type == King && p.Color == byColor {
				return true
			}
		}
	}

	return false
}

// rayHits walks one ray from (row,col) until it hits a piece or the edge,
// and reports whether the first piece found is of byColor and matches one
// of the two candidate types.
func (b *Board) rayHits(row, col, dr, dc int, byColor Color, t1, t2 PieceType) bool {
	r, c := row+dr, col+dc
	for {
		sq := NewSquare(r, c)
		if !sq.IsValid() {
			return false
		}
		p := b.PieceAt(sq)
		if !p.IsEmpty() {
			return p.Color == byColor && (p.Type == t1 || p.Type == t2)
		}
		r += dr
		c += dc
	}
}

// IsChecked reports whether the given color's king is currently attacked.
func (b *Board) IsChecked(c Color) bool {
	k := b.kings[c]
	return b.IsSquareAttacked(int(k.Row), int(k.Col), c.Opponent())
}
