package board

// Undo records exactly what Apply changed on a Board so that UndoMove can
// invert it without keeping a full board snapshot.
type Undo struct {
	From             Square
	To               int
	TrueTo           Square
	Mover            Piece
	Captured         Piece  // Empty if the move was not a capture
	EPCapturedSquare Square // SquareNone unless this was an en-passant capture
	RookFrom         Square // SquareNone unless this was a castle
	RookTo           Square
}

// Apply plays the move (from, to) on b in place, decoding the encoded
// destination to itself, and returns an Undo that reverses exactly this
// change. It does not touch any State fields —
// castling rights, en-passant file, the fifty-move counter and king
// squares live directly on the arena node and are advanced by NextState,
// not rediscovered by replaying the board.
//
// En passant and castling are both detected geometrically: a pawn moving
// diagonally onto an empty square is an en-passant capture, and a king
// moving two files is a castle. Neither requires knowing the current
// en-passant file or castling rights.
func Apply(b *Board, from Square, to int) Undo {
	trueTo, promotion := DecodeTo(to)
	mover := b[from]
	captured := b[trueTo]

	u := Undo{
		From: from, To: to, TrueTo: trueTo,
		Mover: mover, Captured: captured,
		EPCapturedSquare: SquareNone, RookFrom: SquareNone, RookTo: SquareNone,
	}

	b[trueTo] = mover
	b[from] = Empty

	switch mover {
	case WhitePawn, BlackPawn:
		if promotion != Empty {
			b[trueTo] = promotion
		} else if captured == Empty && from.File() != trueTo.File() {
			var capSq Square
			if mover == WhitePawn {
				capSq = trueTo - 8
			} else {
				capSq = trueTo + 8
			}
			u.EPCapturedSquare = capSq
			u.Captured = b[capSq]
			b[capSq] = Empty
		}
	case WhiteKing:
		if from == 4 && trueTo == 6 {
			u.RookFrom, u.RookTo = 7, 5
			b[5], b[7] = WhiteRook, Empty
		} else if from == 4 && trueTo == 2 {
			u.RookFrom, u.RookTo = 0, 3
			b[3], b[0] = WhiteRook, Empty
		}
	case BlackKing:
		if from == 60 && trueTo == 62 {
			u.RookFrom, u.RookTo = 63, 61
			b[61], b[63] = BlackRook, Empty
		} else if from == 60 && trueTo == 58 {
			u.RookFrom, u.RookTo = 56, 59
			b[59], b[56] = BlackRook, Empty
		}
	}
	return u
}

// UndoMove inverts the Apply call that produced u.
func UndoMove(b *Board, u Undo) {
	b[u.From] = u.Mover
	if u.EPCapturedSquare != SquareNone {
		b[u.TrueTo] = Empty
		b[u.EPCapturedSquare] = u.Captured
	} else {
		b[u.TrueTo] = u.Captured
	}
	if u.RookFrom != SquareNone {
		b[u.RookFrom] = rookOfSide(u.Mover)
		b[u.RookTo] = Empty
	}
}

func rookOfSide(king Piece) Piece {
	if king == BlackKing {
		return BlackRook
	}
	return WhiteRook
}

// NextState computes the misc-state fields of the position reached by
// playing (from, to) out of parent, without touching a board. isCapture
// must be true for ordinary captures and for en-passant captures alike.
// This is what the expansion engine uses to fill in a new child node's
// castling/en-passant/fifty-move/king-square fields at creation time; it
// never needs to wait for that child to be reconstructed and replayed.
func NextState(parent State, mover Piece, from, trueTo Square, isCapture bool) State {
	next := parent
	next.SideToMove = parent.SideToMove.Opponent()
	next.EnPassant = SquareNone

	isPawnMove := mover == WhitePawn || mover == BlackPawn
	if isPawnMove || isCapture {
		next.FiftyMove = 0
	} else if next.FiftyMove < 100 {
		next.FiftyMove++
	}

	switch mover {
	case WhitePawn:
		if from.Rank() == 1 && trueTo.Rank() == 3 {
			next.EnPassant = Square(trueTo.File())
		}
	case BlackPawn:
		if from.Rank() == 6 && trueTo.Rank() == 4 {
			next.EnPassant = Square(trueTo.File())
		}
	case WhiteKing:
		next.Castle.WhiteKingSide = false
		next.Castle.WhiteQueenSide = false
		next.WhiteKingSq = trueTo
	case BlackKing:
		next.Castle.BlackKingSide = false
		next.Castle.BlackQueenSide = false
		next.BlackKingSq = trueTo
	case WhiteRook:
		if from == 7 {
			next.Castle.WhiteKingSide = false
		} else if from == 0 {
			next.Castle.WhiteQueenSide = false
		}
	case BlackRook:
		if from == 63 {
			next.Castle.BlackKingSide = false
		} else if from == 56 {
			next.Castle.BlackQueenSide = false
		}
	}
	return next
}
