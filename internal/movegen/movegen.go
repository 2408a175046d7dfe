// Package movegen enumerates the legal moves of a position into a
// worker-owned pool, along with each move's incremental eval and the
// running best eval under side-to-move polarity.
//
// Candidates that would leave the moving side's own king in check are
// filtered out here, so a position with zero generated moves is genuinely
// checkmate or stalemate and search never sees a king capture.
package movegen

import (
	"github.com/ianhowey12/Chess-Engine/internal/board"
	"github.com/ianhowey12/Chess-Engine/internal/eval"
)

// MaxMoves bounds the number of legal moves in any reachable position.
const MaxMoves = 350

// Pool is a worker's reusable move buffer. Froms/Tos mirror the arena's
// move-pool layout; Evals carries each move's incremental eval and Best
// the extremum under side-to-move polarity.
type Pool struct {
	Froms [MaxMoves]int8
	Tos   [MaxMoves]int8
	Evals [MaxMoves]float64
	N     int
	Best  float64
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type gen struct {
	b    *board.Board
	st   *board.State
	side board.Side
	pool *Pool
}

// Generate fills pool with the legal moves of the side to move in st,
// played on b. b is used as scratch for the per-move legality probe but is
// restored before returning.
func Generate(b *board.Board, st *board.State, pool *Pool) {
	g := gen{b: b, st: st, side: st.SideToMove, pool: pool}
	pool.N = 0
	if g.side == board.White {
		pool.Best = eval.BlackWinsEval
	} else {
		pool.Best = eval.WhiteWinsEval
	}

	for sq := board.Square(0); sq < 64; sq++ {
		p := b[sq]
		if p == board.Empty {
			continue
		}
		if g.side == board.White {
			switch p {
			case board.WhitePawn:
				g.pawn(sq)
			case board.WhiteKnight:
				g.hops(sq, knightOffsets)
			case board.WhiteBishop:
				g.slides(sq, bishopDirs)
			case board.WhiteRook:
				g.slides(sq, rookDirs)
			case board.WhiteQueen:
				g.slides(sq, bishopDirs)
				g.slides(sq, rookDirs)
			case board.WhiteKing:
				g.hops(sq, kingOffsets)
				g.castles(sq)
			}
		} else {
			switch p {
			case board.BlackPawn:
				g.pawn(sq)
			case board.BlackKnight:
				g.hops(sq, knightOffsets)
			case board.BlackBishop:
				g.slides(sq, bishopDirs)
			case board.BlackRook:
				g.slides(sq, rookDirs)
			case board.BlackQueen:
				g.slides(sq, bishopDirs)
				g.slides(sq, rookDirs)
			case board.BlackKing:
				g.hops(sq, kingOffsets)
				g.castles(sq)
			}
		}
	}
}

func (g *gen) enemy(p board.Piece) bool {
	if g.side == board.White {
		return p.IsBlack()
	}
	return p.IsWhite()
}

// add applies the legality filter to one candidate and, if it survives,
// records it with its incremental eval.
func (g *gen) add(from board.Square, to int) {
	trueTo, promotion := board.DecodeTo(to)

	u := board.Apply(g.b, from, to)
	kingSq := g.st.KingSquare(g.side)
	if g.b[trueTo] == board.WhiteKing || g.b[trueTo] == board.BlackKing {
		kingSq = trueTo
	}
	legal := board.KingNotInCheck(g.b, kingSq, g.side == board.Black)
	board.UndoMove(g.b, u)
	if !legal {
		return
	}

	e := eval.Move(g.b, from, trueTo, promotion)

	p := g.pool
	p.Froms[p.N] = int8(from)
	p.Tos[p.N] = int8(to)
	p.Evals[p.N] = e
	p.N++

	if g.side == board.White {
		if e > p.Best {
			p.Best = e
		}
	} else {
		if e < p.Best {
			p.Best = e
		}
	}
}

// addPromotions emits one candidate per promotion piece.
func (g *gen) addPromotions(from, trueTo board.Square) {
	if g.side == board.White {
		for p := board.WhiteKnight; p <= board.WhiteQueen; p++ {
			g.add(from, board.EncodeTo(trueTo, p))
		}
	} else {
		for p := board.BlackKnight; p <= board.BlackQueen; p++ {
			g.add(from, board.EncodeTo(trueTo, p))
		}
	}
}

func (g *gen) pawn(sq board.Square) {
	r, c := sq.Rank(), sq.File()
	b := g.b

	if g.side == board.White {
		if r == 6 {
			if b[sq+8] == board.Empty {
				g.addPromotions(sq, sq+8)
			}
			if c > 0 && b[sq+7].IsBlack() {
				g.addPromotions(sq, sq+7)
			}
			if c < 7 && b[sq+9].IsBlack() {
				g.addPromotions(sq, sq+9)
			}
			return
		}
		if b[sq+8] == board.Empty {
			g.add(sq, int(sq+8))
			if r == 1 && b[sq+16] == board.Empty {
				g.add(sq, int(sq+16))
			}
		}
		if c > 0 {
			if b[sq+7].IsBlack() {
				g.add(sq, int(sq+7))
			} else if r == 4 && g.st.EnPassant == board.Square(c-1) {
				g.add(sq, int(sq+7))
			}
		}
		if c < 7 {
			if b[sq+9].IsBlack() {
				g.add(sq, int(sq+9))
			} else if r == 4 && g.st.EnPassant == board.Square(c+1) {
				g.add(sq, int(sq+9))
			}
		}
		return
	}

	if r == 1 {
		if b[sq-8] == board.Empty {
			g.addPromotions(sq, sq-8)
		}
		if c > 0 && b[sq-9].IsWhite() {
			g.addPromotions(sq, sq-9)
		}
		if c < 7 && b[sq-7].IsWhite() {
			g.addPromotions(sq, sq-7)
		}
		return
	}
	if b[sq-8] == board.Empty {
		g.add(sq, int(sq-8))
		if r == 6 && b[sq-16] == board.Empty {
			g.add(sq, int(sq-16))
		}
	}
	if c > 0 {
		if b[sq-9].IsWhite() {
			g.add(sq, int(sq-9))
		} else if r == 3 && g.st.EnPassant == board.Square(c-1) {
			g.add(sq, int(sq-9))
		}
	}
	if c < 7 {
		if b[sq-7].IsWhite() {
			g.add(sq, int(sq-7))
		} else if r == 3 && g.st.EnPassant == board.Square(c+1) {
			g.add(sq, int(sq-7))
		}
	}
}

func (g *gen) hops(sq board.Square, offsets [8][2]int) {
	r, c := sq.Rank(), sq.File()
	for _, o := range offsets {
		nr, nc := r+o[0], c+o[1]
		if nr < 0 || nr > 7 || nc < 0 || nc > 7 {
			continue
		}
		to := board.MakeSquare(nr, nc)
		if p := g.b[to]; p == board.Empty || g.enemy(p) {
			g.add(sq, int(to))
		}
	}
}

func (g *gen) slides(sq board.Square, dirs [4][2]int) {
	r, c := sq.Rank(), sq.File()
	for _, d := range dirs {
		for nr, nc := r+d[0], c+d[1]; nr >= 0 && nr <= 7 && nc >= 0 && nc <= 7; nr, nc = nr+d[0], nc+d[1] {
			to := board.MakeSquare(nr, nc)
			p := g.b[to]
			if p == board.Empty {
				g.add(sq, int(to))
				continue
			}
			if g.enemy(p) {
				g.add(sq, int(to))
			}
			break
		}
	}
}

// castles emits castling destinations. A castle requires the flag, the
// rook still on its corner, an empty path, and the king's source, transit
// and destination squares all safe.
// The transit probe temporarily places the king on the transit square so
// sliding rays are blocked the way they would be mid-castle; the
// destination is covered by add's legality filter.
func (g *gen) castles(sq board.Square) {
	isBlack := g.side == board.Black
	b := g.b

	if g.side == board.White {
		if sq != 4 {
			return
		}
		if g.st.Castle.WhiteKingSide && b[7] == board.WhiteRook && b[5] == board.Empty && b[6] == board.Empty {
			if board.KingNotInCheck(b, 4, false) && g.transitSafe(4, 5, isBlack) {
				g.add(4, 6)
			}
		}
		if g.st.Castle.WhiteQueenSide && b[0] == board.WhiteRook && b[1] == board.Empty && b[2] == board.Empty && b[3] == board.Empty {
			if board.KingNotInCheck(b, 4, false) && g.transitSafe(4, 3, isBlack) {
				g.add(4, 2)
			}
		}
		return
	}

	if sq != 60 {
		return
	}
	if g.st.Castle.BlackKingSide && b[63] == board.BlackRook && b[61] == board.Empty && b[62] == board.Empty {
		if board.KingNotInCheck(b, 60, true) && g.transitSafe(60, 61, isBlack) {
			g.add(60, 62)
		}
	}
	if g.st.Castle.BlackQueenSide && b[56] == board.BlackRook && b[57] == board.Empty && b[58] == board.Empty && b[59] == board.Empty {
		if board.KingNotInCheck(b, 60, true) && g.transitSafe(60, 59, isBlack) {
			g.add(60, 58)
		}
	}
}

func (g *gen) transitSafe(from, transit board.Square, isBlack bool) bool {
	king := g.b[from]
	g.b[from] = board.Empty
	g.b[transit] = king
	safe := board.KingNotInCheck(g.b, transit, isBlack)
	g.b[transit] = board.Empty
	g.b[from] = king
	return safe
}
