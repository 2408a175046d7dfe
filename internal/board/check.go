package board

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// KingNotInCheck reports whether no enemy piece attacks kingSquare, for a
// king of color kingIsBlack. It does not require a king to actually be on
// that square (castling uses it to probe transit squares) and never wraps
// around a board edge.
func KingNotInCheck(b *Board, kingSquare Square, kingIsBlack bool) bool {
	r, c := kingSquare.Rank(), kingSquare.File()

	var pawnAttacker, knightAttacker, bishopOrQueen, rookOrQueen, kingAttacker Piece
	if kingIsBlack {
		pawnAttacker, knightAttacker, bishopOrQueen, rookOrQueen, kingAttacker =
			WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteKing
	} else {
		pawnAttacker, knightAttacker, bishopOrQueen, rookOrQueen, kingAttacker =
			BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackKing
	}
	queenAttacker := bishopOrQueen + 2 // WhiteQueen or BlackQueen, 2 past the bishop code

	// A pawn attacks diagonally forward, so the attacker sits one rank
	// closer to its own back rank: above a white king, below a black one.
	pawnRank := r + 1
	if kingIsBlack {
		pawnRank = r - 1
	}
	if pawnRank >= 0 && pawnRank < 8 {
		if c > 0 && b[MakeSquare(pawnRank, c-1)] == pawnAttacker {
			return false
		}
		if c < 7 && b[MakeSquare(pawnRank, c+1)] == pawnAttacker {
			return false
		}
	}

	for _, o := range knightOffsets {
		nr, nc := r+o[0], c+o[1]
		if nr >= 0 && nr < 8 && nc >= 0 && nc < 8 && b[MakeSquare(nr, nc)] == knightAttacker {
			return false
		}
	}

	for _, o := range kingOffsets {
		nr, nc := r+o[0], c+o[1]
		if nr >= 0 && nr < 8 && nc >= 0 && nc < 8 && b[MakeSquare(nr, nc)] == kingAttacker {
			return false
		}
	}

	for _, d := range diagonalDirs {
		if slidingAttack(b, r, c, d[0], d[1], bishopOrQueen, queenAttacker) {
			return false
		}
	}
	for _, d := range orthogonalDirs {
		if slidingAttack(b, r, c, d[0], d[1], rookOrQueen, queenAttacker) {
			return false
		}
	}

	return true
}

// slidingAttack walks from (r,c) in direction (dr,dc) until it leaves the
// board or hits an occupied square, reporting whether that first occupied
// square is one of the two given attacker piece codes.
func slidingAttack(b *Board, r, c, dr, dc int, slider, queen Piece) bool {
	for rr, cc := r+dr, c+dc; rr >= 0 && rr < 8 && cc >= 0 && cc < 8; rr, cc = rr+dr, cc+dc {
		p := b[MakeSquare(rr, cc)]
		if p == Empty {
			continue
		}
		return p == slider || p == queen
	}
	return false
}
