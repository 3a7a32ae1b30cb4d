package board

// GenerateMoves returns every fully legal move for the given color: pseudo-
// legal generation (phase A) followed by a legality filter (phase B) that
// discards any move leaving the mover's own king attacked.
func (b *Board) GenerateMoves(color Color) []Move {
	pseudo := b.pseudoLegalMoves(color)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !b.leavesKingAttacked(m, color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoLegalMoves generates phase A: every move a piece of color could
// make ignoring whether it leaves its own king in check.
func (b *Board) pseudoLegalMoves(color Color) []Move {
	var moves []Move

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p.IsEmpty() || p.Color != color {
				continue
			}
			from := NewSquare(row, col)
			switch p.Type {
			case Pawn:
				b.genPawnMoves(from, color, &moves)
			case Knight:
				b.genStepMoves(from, color, knightOffsets[:], &moves)
			case Bishop:
				b.genSlideMoves(from, color, bishopDirs[:], &moves)
			case Rook:
				b.genSlideMoves(from, color, rookDirs[:], &moves)
			case Queen:
				b.genSlideMoves(from, color, bishopDirs[:], &moves)
				b.genSlideMoves(from, color, rookDirs[:], &moves)
			case King:
				b.genStepMoves(from, color, kingOffsets[:], &moves)
				b.genCastlingMoves(from, color, &moves)
			}
		}
	}
	return moves
}

func (b *Board) genPawnMoves(from Square, color Color, moves *[]Move) {
	dir, startRow := -1, 6
	if color == Black {
		dir, startRow = 1, 1
	}

	row, col := int(from.Row), int(from.Col)

	// Forward one.
	one := NewSquare(row+dir, col)
	if one.IsValid() && b.PieceAt(one).IsEmpty() {
		*moves = append(*moves, Move{From: from, To: one})

		// Forward two from the starting rank, if both squares are empty.
		if row == startRow {
			two := NewSquare(row+2*dir, col)
			if b.PieceAt(two).IsEmpty() {
				*moves = append(*moves, Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, including en passant onto the target square.
	for _, dc := range [2]int{-1, 1} {
		to := NewSquare(row+dir, col+dc)
		if !to.IsValid() {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Color != color {
			*moves = append(*moves, Move{From: from, To: to})
		} else if b.hasEP && b.epTarget == to {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

func (b *Board) genStepMoves(from Square, color Color, offsets [][2]int, moves *[]Move) {
	row, col := int(from.Row), int(from.Col)
	for _, o := range offsets {
		to := NewSquare(row+o[0], col+o[1])
		if !to.IsValid() {
			continue
		}
		target := b.PieceAt(to)
		if target.IsEmpty() || target.Color != color {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

func (b *Board) genSlideMoves(from Square, color Color, dirs [][2]int, moves *[]Move) {
	row, col := int(from.Row), int(from.Col)
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		for {
			to := NewSquare(r, c)
			if !to.IsValid() {
				break
			}
			target := b.PieceAt(to)
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if target.Color != color {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// genCastlingMoves appends a two-file king move for each side whose rights
// are still available and whose path is clear and unattacked.
func (b *Board) genCastlingMoves(from Square, color Color, moves *[]Move) {
	row := 7
	kingside, queenside := b.castling.WK, b.castling.WQ
	if color == Black {
		row = 0
		kingside, queenside = b.castling.BK, b.castling.BQ
	}

	opp := color.Opponent()

	if kingside && b.emptyBetween(row, 5, 6) &&
		!b.IsSquareAttacked(row, 4, opp) &&
		!b.IsSquareAttacked(row, 5, opp) &&
		!b.IsSquareAttacked(row, 6, opp) {
		*moves = append(*moves, Move{From: from, To: NewSquare(row, 6)})
	}
	if queenside && b.emptyBetween(row, 1, 3) &&
		!b.IsSquareAttacked(row, 4, opp) &&
		!b.IsSquareAttacked(row, 3, opp) &&
		!b.IsSquareAttacked(row, 2, opp) {
		*moves = append(*moves, Move{From: from, To: NewSquare(row, 2)})
	}
}

func (b *Board) emptyBetween(row, fromCol, toCol int) bool {
	for c := fromCol; c <= toCol; c++ {
		if !b.PieceAt(NewSquare(row, c)).IsEmpty() {
			return false
		}
	}
	return true
}

// leavesKingAttacked applies m in place, tests whether color's king is
// attacked, then restores the board exactly. It does not replicate every
// side effect of MakeMove (castling rook relocation, rights, clocks) since
// none of those affect whether the mover's own king is under attack
// afterwards.
func (b *Board) leavesKingAttacked(m Move, color Color) bool {
	mover := b.PieceAt(m.From)
	captured := b.PieceAt(m.To)
	prevKingSq := b.kings[color]

	var epSq Square
	var epPiece Piece
	isEP := mover.Type == Pawn && captured.IsEmpty() && b.hasEP && m.To == b.epTarget && m.From.Col != m.To.Col
	if isEP {
		epRow := int(m.To.Row) + 1
		if color == Black {
			epRow = int(m.To.Row) - 1
		}
		epSq = NewSquare(epRow, int(m.To.Col))
		epPiece = b.PieceAt(epSq)
		b.setPiece(epSq, NoPiece)
	}

	b.setPiece(m.To, mover)
	b.setPiece(m.From, NoPiece)

	attacked := b.IsChecked(color)

	b.setPiece(m.From, mover)
	b.setPiece(m.To, captured)
	if isEP {
		b.setPiece(epSq, epPiece)
	}
	b.kings[color] = prevKingSq

	return attacked
}
