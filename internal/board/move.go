package board

// A move is a (from, to) pair. To is 0..63 for a normal move, or 64..127
// for a pawn promotion: the destination square's file is To%8, the rank is
// implied by side (rank 8 for white, rank 1 for black), and the promotion
// piece is encoded in the high bits.
//
// Encoding, matching the wire contract:
//
//	64..71  = promote to white knight, file = To-64
//	72..79  = promote to white bishop
//	80..87  = promote to white rook
//	88..95  = promote to white queen
//	96..103 = promote to black knight, file = To-96
//	104..111 = promote to black bishop
//	112..119 = promote to black rook
//	120..127 = promote to black queen
const (
	whitePromoBase = 64
	blackPromoBase = 96
)

// DecodeTo splits an encoded destination into the true board square and the
// promotion piece (Empty if this is not a promotion).
func DecodeTo(to int) (trueSquare Square, promotion Piece) {
	if to < whitePromoBase {
		return Square(to), Empty
	}
	if to < blackPromoBase {
		idx := (to - whitePromoBase) / 8
		file := to % 8
		return MakeSquare(7, file), WhiteKnight + Piece(idx)
	}
	idx := (to - blackPromoBase) / 8
	file := to % 8
	return MakeSquare(0, file), BlackKnight + Piece(idx)
}

// EncodeTo is the inverse of DecodeTo: given a true destination square and
// a promotion piece (Empty for a non-promoting move), produces the encoded
// destination value used in move descriptors.
func EncodeTo(trueSquare Square, promotion Piece) int {
	if promotion == Empty {
		return int(trueSquare)
	}
	file := trueSquare.File()
	if promotion >= WhiteKnight && promotion <= WhiteQueen {
		return whitePromoBase + int(promotion-WhiteKnight)*8 + file
	}
	return blackPromoBase + int(promotion-BlackKnight)*8 + file
}

// Move is a move descriptor as produced by the move generator: a from
// square and an encoded destination (see DecodeTo/EncodeTo). The arena's
// move pool stores these as two parallel byte arrays rather than a packed
// struct, but a struct is the natural in-memory shape for the generator's
// own working buffers and for test helpers.
type Move struct {
	From Square
	To   int
}
