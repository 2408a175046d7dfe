package eval

import (
	"testing"

	"github.com/ianhowey12/Chess-Engine/internal/board"
)

func TestTableValues(t *testing.T) {
	var tests = []struct {
		piece board.Piece
		sq    board.Square
		want  float64
	}{
		// White pawn on a1: row 0, col 0 -> (0+0-3)*0.05 + 1.0
		{board.WhitePawn, 0, 0.85},
		// White pawn on e4 (rank 3, file 4): (3+3-3)*0.05 + 1.0
		{board.WhitePawn, board.MakeSquare(3, 4), 1.15},
		// Black pawn on e5 (rank 4, file 4): rowScore 7-4=3, (3+3-3)*-0.05 - 1.0
		{board.BlackPawn, board.MakeSquare(4, 4), -1.15},
		// White king on e1: (0+3-3)*0.15 + 0.0
		{board.WhiteKing, 4, 0.0},
		// White knight on d4 (rank 3, file 3): (3+3-3)*0.08 + 3.0
		{board.WhiteKnight, board.MakeSquare(3, 3), 3.24},
	}
	for _, test := range tests {
		got := PieceSquare(test.piece, test.sq)
		if diff := got - test.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("PieceSquare(%d, %d) = %v, want %v", test.piece, test.sq, got, test.want)
		}
	}
}

func TestFullStartingPositionIsZero(t *testing.T) {
	pos := board.StartingPosition()
	got := Full(&pos.Board)
	if got > 1e-9 || got < -1e-9 {
		t.Errorf("Full(starting position) = %v, want 0", got)
	}
}

// Move must equal the difference of full-board evals across Apply, for any
// move that is not a castle or en-passant capture (those relocate a second
// piece the delta deliberately ignores, matching the full-board contract
// only on the moved piece and its direct capture).
func TestMoveMatchesFullDelta(t *testing.T) {
	pos := board.StartingPosition()
	var tests = []struct {
		from board.Square
		to   int
	}{
		{12, 28}, // e2e4
		{6, 21},  // g1f3
		{1, 18},  // b1c3
	}
	for _, test := range tests {
		trueTo, promotion := board.DecodeTo(test.to)
		before := Full(&pos.Board)
		delta := Move(&pos.Board, test.from, trueTo, promotion)
		u := board.Apply(&pos.Board, test.from, test.to)
		after := Full(&pos.Board)
		board.UndoMove(&pos.Board, u)
		if diff := (after - before) - delta; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("from=%d to=%d: delta=%v, full diff=%v", test.from, test.to, delta, after-before)
		}
	}
}

func TestMoveCapture(t *testing.T) {
	var b board.Board
	for i := range b {
		b[i] = board.Empty
	}
	from := board.MakeSquare(3, 3)
	to := board.MakeSquare(4, 4)
	b[from] = board.WhitePawn
	b[to] = board.BlackKnight
	delta := Move(&b, from, to, board.Empty)
	want := -PieceSquare(board.BlackKnight, to) - PieceSquare(board.WhitePawn, from) + PieceSquare(board.WhitePawn, to)
	if diff := delta - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("capture delta = %v, want %v", delta, want)
	}
}

func TestMoveKingCaptureShortCircuits(t *testing.T) {
	var b board.Board
	for i := range b {
		b[i] = board.Empty
	}
	b[board.MakeSquare(3, 3)] = board.WhiteRook
	b[board.MakeSquare(3, 7)] = board.BlackKing
	if got := Move(&b, board.MakeSquare(3, 3), board.MakeSquare(3, 7), board.Empty); got != WhiteWinsEval {
		t.Errorf("capturing black king = %v, want %v", got, WhiteWinsEval)
	}
	b[board.MakeSquare(3, 7)] = board.WhiteKing
	b[board.MakeSquare(3, 3)] = board.BlackRook
	if got := Move(&b, board.MakeSquare(3, 3), board.MakeSquare(3, 7), board.Empty); got != BlackWinsEval {
		t.Errorf("capturing white king = %v, want %v", got, BlackWinsEval)
	}
}

func TestForcedMateDelay(t *testing.T) {
	var tests = []struct {
		in   float64
		want float64
	}{
		{WhiteWinsEval, WhiteWinsEval - ForcedMateIncrement},
		{BlackWinsEval, BlackWinsEval + ForcedMateIncrement},
		{0.5, 0.5},
		{WhiteWinsThreshold, WhiteWinsThreshold - ForcedMateIncrement},
		{-3.2, -3.2},
	}
	for _, test := range tests {
		if got := ForcedMateDelay(test.in); got != test.want {
			t.Errorf("ForcedMateDelay(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
