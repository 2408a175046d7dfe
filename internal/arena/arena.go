// Package arena holds the shared node tree and move pool. Both are
// allocated once at init with a hard capacity and grow only by atomic bump
// allocation; a session reset rewinds the cursors without zeroing memory.
package arena

import (
	"math"
	"sync/atomic"

	"github.com/ianhowey12/Chess-Engine/internal/board"
)

// GameState classifies a node's position.
type GameState int8

const (
	Normal GameState = iota
	WhiteWin
	BlackWin
	Draw
)

// None marks an unset parent or child-start index.
const None int32 = -1

// Node is one arena element. The full board is not stored; a node keeps
// only the move that created it plus the misc state needed so that
// replaying parent-link moves from the root reconstructs the board.
//
// All fields except eval, NumChildren, ChildStart, MoveStart, NumMoves and
// State are written once by the worker that expanded the node's parent
// before the node index is published, and are read-only afterwards.
// MoveStart, NumMoves and State are written again by the single worker that
// expands the node itself. NumChildren/ChildStart
// are the publication point for a node's children: the expanding worker
// writes every child field first, then stores the slice atomically, and
// readers walking the tree load them atomically.
type Node struct {
	Castle    board.CastleRights
	EnPassant board.Square // en-passant file, or SquareNone
	FiftyMove int8
	WhiteKing board.Square
	BlackKing board.Square

	From int8 // 0..63; meaningless at the root
	To   int8 // 0..127, promotion encoded in the destination

	Side  board.Side
	State GameState
	Depth int32 // plies from the root; the root is 0

	Parent      int32
	childStart  atomic.Int32
	numChildren atomic.Int32
	MoveStart   int32
	NumMoves    int32

	eval  atomic.Uint64 // float64 bits
	Score float64       // set once at enqueue time, read only by the owning queue
}

// Eval atomically loads the node's eval.
func (n *Node) Eval() float64 {
	return math.Float64frombits(n.eval.Load())
}

// SetEval atomically stores the node's eval.
func (n *Node) SetEval(e float64) {
	n.eval.Store(math.Float64bits(e))
}

// Children loads the published child slice. A zero-value Node reports
// (0, 0); the engine publishes (None, 0) when it creates a node, so for
// arena nodes start is None until the node has been expanded.
func (n *Node) Children() (start, count int32) {
	count = n.numChildren.Load()
	start = n.childStart.Load()
	return start, count
}

// PublishChildren stores the child slice. Every child node's fields must be
// fully written before this call; the atomic store is what makes them
// visible to other workers.
func (n *Node) PublishChildren(start, count int32) {
	n.childStart.Store(start)
	n.numChildren.Store(count)
}

// StateOf returns the node's misc fields as a board.State for replay.
func (n *Node) StateOf() board.State {
	return board.State{
		Castle:      n.Castle,
		EnPassant:   n.EnPassant,
		FiftyMove:   n.FiftyMove,
		WhiteKingSq: n.WhiteKing,
		BlackKingSq: n.BlackKing,
		SideToMove:  n.Side,
	}
}

// Arena is the shared tree plus the shared move pool.
type Arena struct {
	nodes    []Node
	numNodes atomic.Int32

	moveFrom []int8
	moveTo   []int8
	numMoves atomic.Int32
}

// New allocates an arena with the given hard capacities.
func New(nodeCap, moveCap int) *Arena {
	return &Arena{
		nodes:    make([]Node, nodeCap),
		moveFrom: make([]int8, moveCap),
		moveTo:   make([]int8, moveCap),
	}
}

// Reset rewinds both allocation cursors to zero. Memory is not zeroed;
// stale nodes past the cursor are unreachable because nothing links to them.
func (a *Arena) Reset() {
	a.numNodes.Store(0)
	a.numMoves.Store(0)
}

// AllocNodes reserves n contiguous node slots, returning the start index,
// or (0, false) when the arena is out of space. A failed reservation leaves
// the cursor past the cap; later calls keep failing until Reset.
func (a *Arena) AllocNodes(n int32) (int32, bool) {
	start := a.numNodes.Add(n) - n
	if int(start)+int(n) > len(a.nodes) {
		return 0, false
	}
	return start, true
}

// AllocMoves reserves n contiguous move slots in the pool.
func (a *Arena) AllocMoves(n int32) (int32, bool) {
	start := a.numMoves.Add(n) - n
	if int(start)+int(n) > len(a.moveFrom) {
		return 0, false
	}
	return start, true
}

// Node returns the node at index i. The pointer stays valid for the life of
// the arena; indices are immutable once assigned.
func (a *Arena) Node(i int32) *Node {
	return &a.nodes[i]
}

// Root returns node 0. Only valid after a session setup has built it.
func (a *Arena) Root() *Node {
	return &a.nodes[0]
}

// NumNodes returns the current node cursor (may exceed capacity after a
// failed allocation).
func (a *Arena) NumNodes() int32 {
	return a.numNodes.Load()
}

// SetMove writes one move-pool entry. Only the worker that reserved the
// slot writes it, before recording the slice on the owning node.
func (a *Arena) SetMove(i int32, from int8, to int8) {
	a.moveFrom[i] = from
	a.moveTo[i] = to
}

// MoveAt reads one move-pool entry.
func (a *Arena) MoveAt(i int32) (from int8, to int8) {
	return a.moveFrom[i], a.moveTo[i]
}
