package shell

import (
	"fmt"
	"strconv"

	"github.com/ianhowey12/Chess-Engine/internal/arena"
	"github.com/ianhowey12/Chess-Engine/internal/board"
	"github.com/ianhowey12/Chess-Engine/internal/search"
)

// positionFields is the length of the position wire format: 64 piece codes
// (rank 1 first) followed by the 12 misc fields.
const positionFields = 76

// parsePosition decodes the whitespace-split integer wire format into a
// Position. The misc fields follow the board in this order: white-kingside,
// white-queenside, black-kingside, black-queenside castling, en-passant
// file, fifty-move counter, both king squares, the last move's from and to,
// side to move, game state.
func parsePosition(fields []string) (search.Position, error) {
	var pos search.Position
	if len(fields) != positionFields {
		return pos, fmt.Errorf("position has %d fields, want %d", len(fields), positionFields)
	}
	values := make([]int, positionFields)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return pos, fmt.Errorf("position field %d: %v", i, err)
		}
		values[i] = v
	}

	for sq := 0; sq < 64; sq++ {
		p := values[sq]
		if p < -1 || p >= board.NumPieces {
			return pos, fmt.Errorf("square %d holds invalid piece code %d", sq, p)
		}
		pos.Board[sq] = board.Piece(p)
	}

	misc := values[64:]
	pos.State.Castle = board.CastleRights{
		WhiteKingSide:  misc[0] != 0,
		WhiteQueenSide: misc[1] != 0,
		BlackKingSide:  misc[2] != 0,
		BlackQueenSide: misc[3] != 0,
	}
	epFile := misc[4]
	if epFile < -1 || epFile > 7 {
		return pos, fmt.Errorf("en-passant file %d out of range", epFile)
	}
	pos.State.EnPassant = board.Square(epFile)
	pos.State.FiftyMove = int8(misc[5])
	wk, bk := misc[6], misc[7]
	if wk < 0 || wk > 63 || bk < 0 || bk > 63 {
		return pos, fmt.Errorf("king squares %d/%d out of range", wk, bk)
	}
	pos.State.WhiteKingSq = board.Square(wk)
	pos.State.BlackKingSq = board.Square(bk)
	pos.From = int8(misc[8])
	pos.To = int8(misc[9])
	if misc[10] != 0 && misc[10] != 1 {
		return pos, fmt.Errorf("side to move %d out of range", misc[10])
	}
	pos.State.SideToMove = board.Side(misc[10])
	if misc[11] < 0 || misc[11] > 3 {
		return pos, fmt.Errorf("game state %d out of range", misc[11])
	}
	pos.Game = arena.GameState(misc[11])
	return pos, nil
}

// evalMilli is the wire encoding of an eval: multiplied by 1000 and
// truncated toward zero.
func evalMilli(e float64) int64 {
	return int64(e * 1000)
}
