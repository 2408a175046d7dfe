package search

import (
	"github.com/ianhowey12/Chess-Engine/internal/board"
	"github.com/ianhowey12/Chess-Engine/internal/movegen"
)

// TestLegality reports whether (from, to) is a legal move for the side to
// move in pos. to uses the encoded destination range, so a promotion must
// name its piece. The position is not mutated.
func TestLegality(from, to int, pos *Position) bool {
	if from < 0 || from > 63 || to < 0 || to > 127 || from == to {
		return false
	}
	var pool movegen.Pool
	b := pos.Board
	st := pos.State
	movegen.Generate(&b, &st, &pool)
	for i := 0; i < pool.N; i++ {
		if int(pool.Froms[i]) == from && int(pool.Tos[i]) == to {
			return true
		}
	}
	return false
}

// TestCheck reports whether the given side's king is attacked in pos.
func TestCheck(sideIsBlack bool, pos *Position) bool {
	side := board.White
	if sideIsBlack {
		side = board.Black
	}
	b := pos.Board
	return !board.KingNotInCheck(&b, pos.State.KingSquare(side), sideIsBlack)
}
