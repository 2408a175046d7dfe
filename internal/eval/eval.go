package eval

import (
	"github.com/ianhowey12/Chess-Engine/internal/board"
)

// Base material value per piece code, in pawns. Black pieces carry the
// negated value so a full-board eval is a plain sum over occupied squares.
var piecePointValues = [board.NumPieces]float64{
	1.0, 3.0, 3.3, 5.0, 9.0, 0.0,
	-1.0, -3.0, -3.3, -5.0, -9.0, -0.0,
}

// How much moving a piece one square toward the center changes its value.
var pieceEdgeContribution = [board.NumPieces]float64{
	0.05, 0.08, 0.07, 0.07, 0.15, 0.0,
	-0.05, -0.08, -0.07, -0.07, -0.15, -0.0,
}

// table[piece][square] is the value of having that piece on that square.
var table [board.NumPieces][64]float64

func init() {
	for p := 0; p < board.NumPieces; p++ {
		for sq := 0; sq < 64; sq++ {
			rowScore := sq / 8
			if p >= int(board.BlackPawn) {
				rowScore = 7 - sq/8
			}
			colScore := sq % 8
			if colScore >= 4 {
				colScore = 7 - colScore
			}
			placement := float64(rowScore+colScore-3) * pieceEdgeContribution[p]
			table[p][sq] = piecePointValues[p] + placement
		}
	}
}

// PieceSquare returns the table value for a piece on a square.
func PieceSquare(p board.Piece, sq board.Square) float64 {
	return table[p][sq]
}

// Full sums the table over every occupied square. Used once per session for
// the root node; everything below the root is evaluated incrementally.
func Full(b *board.Board) float64 {
	var sum float64
	for sq, p := range b {
		if p != board.Empty {
			sum += table[p][sq]
		}
	}
	return sum
}

// Move returns the eval change of moving the piece on from to trueTo,
// promoting to promotion (Empty for a non-promoting move). Capturing a king
// short-circuits to a terminal eval; the move generator's legality filter
// makes that unreachable in search, but the evaluator keeps the check so a
// caller probing an arbitrary position cannot read a garbage delta.
func Move(b *board.Board, from, trueTo board.Square, promotion board.Piece) float64 {
	target := b[trueTo]
	if target == board.WhiteKing {
		return BlackWinsEval
	}
	if target == board.BlackKing {
		return WhiteWinsEval
	}

	mover := b[from]
	var e float64
	if target != board.Empty {
		e -= table[target][trueTo]
	}
	e -= table[mover][from]
	if promotion != board.Empty {
		e += table[promotion][trueTo]
	} else {
		e += table[mover][trueTo]
	}
	return e
}
