package search

import (
	"fmt"
	"strings"

	"github.com/ianhowey12/Chess-Engine/internal/arena"
	"github.com/ianhowey12/Chess-Engine/internal/board"
)

// Position is the full position descriptor the engine exchanges with
// drivers: board, misc state, the move that produced it (-1/-1 when there
// is none), and the game-state tag.
type Position struct {
	Board board.Board
	State board.State
	From  int8
	To    int8
	Game  arena.GameState
}

// StartingPosition returns the standard starting position with an empty
// move history.
func StartingPosition() Position {
	p := board.StartingPosition()
	return Position{
		Board: p.Board,
		State: p.State,
		From:  -1,
		To:    -1,
		Game:  arena.Normal,
	}
}

// String renders the 8x8 grid of piece codes, rank 8 first, for test
// failures and wire-format debugging.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, "%3d", p.Board[board.MakeSquare(rank, file)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
