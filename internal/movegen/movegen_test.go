package movegen

import (
	"testing"

	"github.com/ianhowey12/Chess-Engine/internal/board"
)

func generate(pos *board.Position) *Pool {
	var pool Pool
	Generate(&pos.Board, &pos.State, &pool)
	return &pool
}

func contains(pool *Pool, from board.Square, to int) bool {
	for i := 0; i < pool.N; i++ {
		if pool.Froms[i] == int8(from) && pool.Tos[i] == int8(to) {
			return true
		}
	}
	return false
}

func TestStartingPositionTwentyMoves(t *testing.T) {
	pos := board.StartingPosition()
	pool := generate(&pos)
	if pool.N != 20 {
		t.Fatalf("starting position generated %d moves, want 20", pool.N)
	}
	if !contains(pool, 12, 28) {
		t.Error("e2e4 missing")
	}
	if !contains(pool, 6, 21) {
		t.Error("g1f3 missing")
	}
}

func TestBoardRestoredAfterGenerate(t *testing.T) {
	pos := board.StartingPosition()
	before := pos.Board
	generate(&pos)
	if pos.Board != before {
		t.Error("Generate must leave the board untouched")
	}
}

func TestKingSafetyFilter(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook e7. The rook may
	// move along the e-file but never off it.
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	pos.Board[4] = board.WhiteKing
	pos.Board[12] = board.WhiteRook
	pos.Board[60] = board.BlackKing
	pos.Board[52] = board.BlackRook
	pos.State = board.State{
		EnPassant:   board.SquareNone,
		WhiteKingSq: 4,
		BlackKingSq: 60,
		SideToMove:  board.White,
	}
	pool := generate(&pos)
	for i := 0; i < pool.N; i++ {
		if pool.Froms[i] != 12 {
			continue
		}
		if to := board.Square(pool.Tos[i]); to.File() != 4 {
			t.Errorf("pinned rook move to %d generated", to)
		}
	}
	if !contains(pool, 12, 20) {
		t.Error("pinned rook should still slide along the pin ray")
	}
}

func TestSingleEscapePosition(t *testing.T) {
	// White king a1 in check from a rook on a8; a rook on c2 covers a2 and
	// b2, leaving Kb1 as the only legal move.
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	pos.Board[0] = board.WhiteKing                      // a1
	pos.Board[56] = board.BlackRook                     // a8, checking
	pos.Board[board.MakeSquare(1, 2)] = board.BlackRook // c2 covers a2 and b2
	pos.Board[60] = board.BlackKing
	pos.State = board.State{
		EnPassant:   board.SquareNone,
		WhiteKingSq: 0,
		BlackKingSq: 60,
		SideToMove:  board.White,
	}
	pool := generate(&pos)
	if pool.N != 1 {
		t.Fatalf("generated %d moves, want exactly the single escape", pool.N)
	}
	if !contains(pool, 0, 1) {
		t.Error("the single escape should be Kb1")
	}
}

func TestEnPassantOnlyOnImmediateReply(t *testing.T) {
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	pos.Board[4] = board.WhiteKing
	pos.Board[60] = board.BlackKing
	d4 := board.MakeSquare(3, 3)
	e4 := board.MakeSquare(3, 4)
	pos.Board[d4] = board.BlackPawn
	pos.Board[e4] = board.WhitePawn // just double-stepped e2e4
	pos.State = board.State{
		EnPassant:   4, // file e
		WhiteKingSq: 4,
		BlackKingSq: 60,
		SideToMove:  board.Black,
	}
	pool := generate(&pos)
	e3 := int(board.MakeSquare(2, 4))
	if !contains(pool, d4, e3) {
		t.Error("dxe3 en passant should be generated on the immediate reply")
	}

	// Same position with the en-passant file expired.
	pos.State.EnPassant = board.SquareNone
	pool = generate(&pos)
	if contains(pool, d4, e3) {
		t.Error("en passant must not be generated once the file has expired")
	}
}

func castlePosition() board.Position {
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	pos.Board[4] = board.WhiteKing
	pos.Board[7] = board.WhiteRook
	pos.Board[60] = board.BlackKing
	pos.State = board.State{
		Castle:      board.CastleRights{WhiteKingSide: true},
		EnPassant:   board.SquareNone,
		WhiteKingSq: 4,
		BlackKingSq: 60,
		SideToMove:  board.White,
	}
	return pos
}

func TestCastlingPreconditions(t *testing.T) {
	var tests = []struct {
		name  string
		setup func(*board.Position)
		want  bool
	}{
		{"all clear", func(*board.Position) {}, true},
		{"flag cleared", func(p *board.Position) { p.State.Castle.WhiteKingSide = false }, false},
		{"rook gone", func(p *board.Position) { p.Board[7] = board.Empty }, false},
		{"path blocked", func(p *board.Position) { p.Board[5] = board.WhiteBishop }, false},
		{"king in check", func(p *board.Position) { p.Board[board.MakeSquare(4, 4)] = board.BlackRook }, false},
		{"transit attacked", func(p *board.Position) { p.Board[board.MakeSquare(4, 5)] = board.BlackRook }, false},
		{"destination attacked", func(p *board.Position) { p.Board[board.MakeSquare(4, 6)] = board.BlackRook }, false},
	}
	for _, test := range tests {
		pos := castlePosition()
		test.setup(&pos)
		pool := generate(&pos)
		if got := contains(pool, 4, 6); got != test.want {
			t.Errorf("%s: castling generated = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestPromotionDescriptors(t *testing.T) {
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	from := board.MakeSquare(6, 0)
	pos.Board[from] = board.WhitePawn
	pos.Board[4] = board.WhiteKing
	pos.Board[60] = board.BlackKing
	pos.State = board.State{
		EnPassant:   board.SquareNone,
		WhiteKingSq: 4,
		BlackKingSq: 60,
		SideToMove:  board.White,
	}
	pool := generate(&pos)
	a8 := board.MakeSquare(7, 0)
	for _, p := range []board.Piece{board.WhiteKnight, board.WhiteBishop, board.WhiteRook, board.WhiteQueen} {
		if !contains(pool, from, board.EncodeTo(a8, p)) {
			t.Errorf("promotion to piece %d missing", p)
		}
	}
}

func TestCheckmateGeneratesNothing(t *testing.T) {
	// White king h1 checked by a rook on h8; g2 is a rook defended by the
	// black king on g3, so Kxg2 is no escape either.
	pos := board.Position{}
	for i := range pos.Board {
		pos.Board[i] = board.Empty
	}
	h1 := board.MakeSquare(0, 7)
	g3 := board.MakeSquare(2, 6)
	pos.Board[h1] = board.WhiteKing
	pos.Board[board.MakeSquare(1, 6)] = board.BlackRook
	pos.Board[board.MakeSquare(7, 7)] = board.BlackRook
	pos.Board[g3] = board.BlackKing
	pos.State = board.State{
		EnPassant:   board.SquareNone,
		WhiteKingSq: h1,
		BlackKingSq: g3,
		SideToMove:  board.White,
	}
	pool := generate(&pos)
	if pool.N != 0 {
		t.Errorf("checkmated position generated %d moves, want 0", pool.N)
	}
}
