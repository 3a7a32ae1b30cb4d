package board

// MakeMove mutates the board to apply m in eight well-defined steps.
// Returns false (and leaves the board untouched) if the from-square is
// empty; this is the only error condition make-move has, and it is
// reported in-band rather than via panic, per the core's no-panic
// contract.
func (b *Board) MakeMove(m Move) bool {
	mover := b.PieceAt(m.From)
	if mover.IsEmpty() {
		return false
	}

	// (1) Record the captured piece, if any.
	captured := b.PieceAt(m.To)

	// (2) En passant: if the mover is a pawn landing on the en-passant
	// target, remove the pawn one square behind the destination.
	isPawn := mover.Type == Pawn
	var enPassantCapture Piece
	if isPawn && b.hasEP && m.To == b.epTarget {
		epRow := int(m.To.Row) + 1
		if mover.Color == Black {
			epRow = int(m.To.Row) - 1
		}
		epSq := NewSquare(epRow, int(m.To.Col))
		enPassantCapture = b.PieceAt(epSq)
		b.setPiece(epSq, NoPiece)
	}

	// (3) Place the moving piece, clear the origin. A pawn reaching the
	// last rank is always promoted to a queen (see Move's doc comment).
	placed := mover
	if isPawn && (m.To.Row == 0 || m.To.Row == 7) {
		placed = Piece{Type: Queen, Color: mover.Color}
	}
	b.setPiece(m.To, placed)
	b.setPiece(m.From, NoPiece)

	// (4) Castling: relocate the rook.
	isCastle := mover.Type == King && abs8(m.To.Col-m.From.Col) == 2
	if isCastle {
		row := m.From.Row
		if m.To.Col == 6 {
			rook := b.PieceAt(NewSquare(int(row), 7))
			b.setPiece(NewSquare(int(row), 5), rook)
			b.setPiece(NewSquare(int(row), 7), NoPiece)
		} else if m.To.Col == 2 {
			rook := b.PieceAt(NewSquare(int(row), 0))
			b.setPiece(NewSquare(int(row), 3), rook)
			b.setPiece(NewSquare(int(row), 0), NoPiece)
		}
	}

	// (5) Update castling rights: king move clears both of that color's
	// rights; a rook moving from a home corner clears the matching right.
	// A capture landing on an enemy home corner also clears that corner's
	// right -- a deliberate deviation from the source, which leaves rights
	// intact when the rook is captured rather than moved (see DESIGN.md).
	if mover.Type == King {
		if mover.Color == White {
			b.castling.WK, b.castling.WQ = false, false
		} else {
			b.castling.BK, b.castling.BQ = false, false
		}
	}
	if mover.Type == Rook {
		b.clearCastlingRightForCorner(m.From, mover.Color)
	}
	if !captured.IsEmpty() && m.To.IsCorner() {
		b.clearCastlingRightForCorner(m.To, captured.Color)
	}

	// (6) En passant target lifecycle.
	b.hasEP = false
	b.epTarget = Square{}
	if isPawn && abs8(m.To.Row-m.From.Row) == 2 {
		b.hasEP = true
		b.epTarget = NewSquare(int(m.From.Row+m.To.Row)/2, int(m.From.Col))
	}

	// (7) Halfmove clock: reset on pawn move or any capture, else increment.
	if isPawn || !captured.IsEmpty() || !enPassantCapture.IsEmpty() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	// (8) Flip side to move.
	if b.turn == Black {
		b.fullmove++
	}
	b.turn = b.turn.Opponent()

	return true
}

// clearCastlingRightForCorner clears the castling right associated with
// the rook's home square at sq, for the given color.
func (b *Board) clearCastlingRightForCorner(sq Square, color Color) {
	switch {
	case color == White && sq == NewSquare(7, 7):
		b.castling.WK = false
	case color == White && sq == NewSquare(7, 0):
		b.castling.WQ = false
	case color == Black && sq == NewSquare(0, 7):
		b.castling.BK = false
	case color == Black && sq == NewSquare(0, 0):
		b.castling.BQ = false
	}
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
