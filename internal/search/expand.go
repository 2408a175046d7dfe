package search

import (
	"github.com/ianhowey12/Chess-Engine/internal/arena"
	"github.com/ianhowey12/Chess-Engine/internal/board"
	"github.com/ianhowey12/Chess-Engine/internal/eval"
	"github.com/ianhowey12/Chess-Engine/internal/movegen"
)

// expand is the unit of search work: reconstruct the node's board by
// replaying from the root, generate its legal moves, publish the move
// slice and a child node per move, enqueue the children, and backtrack the
// eval change toward the root. Returns false when the arena or move pool
// is out of space, which ends this worker's session.
func (e *Engine) expand(w *worker, index int32) bool {
	a := e.arena
	n := a.Node(index)

	// Reconstruct the scratch board. Parent links give the moves
	// leaf-to-root; replay root-to-leaf recording undo info.
	w.path = w.path[:0]
	for i := index; i != 0; {
		node := a.Node(i)
		w.path = append(w.path, replayMove{from: node.From, to: node.To})
		i = node.Parent
	}
	w.undos = w.undos[:0]
	for i := len(w.path) - 1; i >= 0; i-- {
		m := w.path[i]
		w.undos = append(w.undos, board.Apply(&w.scratch, board.Square(m.from), int(m.to)))
	}

	st := n.StateOf()
	movegen.Generate(&w.scratch, &st, &w.pool)
	numMoves := int32(w.pool.N)

	if numMoves == 0 {
		terminalState, terminalEval := classifyTerminal(&w.scratch, &st)
		w.undoReplay()
		n.State = terminalState
		n.SetEval(terminalEval)
		switch terminalState {
		case arena.Draw:
			e.stats.StalematesFound.Add(1)
		case arena.WhiteWin:
			e.stats.WhiteWinsFound.Add(1)
		case arena.BlackWin:
			e.stats.BlackWinsFound.Add(1)
		}
		if n.Parent != arena.None {
			e.backtrack(a.Node(n.Parent))
		}
		return true
	}
	e.stats.NormalsFound.Add(1)

	// Child misc state must be derived while the board still shows this
	// node's position (the mover and capture are read off the board).
	for i := int32(0); i < numMoves; i++ {
		from := board.Square(w.pool.Froms[i])
		trueTo, _ := board.DecodeTo(int(w.pool.Tos[i]))
		mover := w.scratch[from]
		isCapture := w.scratch[trueTo] != board.Empty ||
			((mover == board.WhitePawn || mover == board.BlackPawn) && from.File() != trueTo.File())
		w.childStates[i] = board.NextState(st, mover, from, trueTo, isCapture)
	}

	w.undoReplay()

	moveStart, ok := a.AllocMoves(numMoves)
	if !ok {
		return false
	}
	for i := int32(0); i < numMoves; i++ {
		a.SetMove(moveStart+i, w.pool.Froms[i], w.pool.Tos[i])
	}
	e.stats.MovesAdded.Add(int64(numMoves))
	n.MoveStart = moveStart
	n.NumMoves = numMoves

	// Best-of-static-children eval; the backtrack below keeps ancestors
	// consistent as the subtree refines it.
	var parentEval float64
	if n.Parent != arena.None {
		parentEval = a.Node(n.Parent).Eval()
	}
	nodeEval := parentEval + w.pool.Best
	n.SetEval(nodeEval)

	childStart, ok := a.AllocNodes(numMoves)
	if !ok {
		return false
	}
	e.stats.NodesAdded.Add(int64(numMoves))

	for i := int32(0); i < numMoves; i++ {
		c := a.Node(childStart + i)
		cs := &w.childStates[i]
		c.Castle = cs.Castle
		c.EnPassant = cs.EnPassant
		c.FiftyMove = cs.FiftyMove
		c.WhiteKing = cs.WhiteKingSq
		c.BlackKing = cs.BlackKingSq
		c.From = w.pool.Froms[i]
		c.To = w.pool.Tos[i]
		c.Side = n.Side.Opponent()
		c.State = arena.Normal
		c.Depth = n.Depth + 1
		c.Parent = index
		c.PublishChildren(arena.None, 0)
		c.MoveStart = 0
		c.NumMoves = 0
		c.Score = n.Score + DepthStep
		c.SetEval(nodeEval + w.pool.Evals[i])
	}

	// All child fields are written; the parent's slice store publishes them.
	n.PublishChildren(childStart, numMoves)

	for i := int32(0); i < numMoves; i++ {
		c := a.Node(childStart + i)
		if e.depthLimit > 0 && c.Depth > e.depthLimit {
			continue
		}
		w.queue.Push(childStart+i, c.Score)
	}

	e.backtrack(n)
	return true
}

func (w *worker) undoReplay() {
	for i := len(w.undos) - 1; i >= 0; i-- {
		board.UndoMove(&w.scratch, w.undos[i])
	}
}

// classifyTerminal decides stalemate versus loss for a position with no
// legal moves. b must show the node's position.
func classifyTerminal(b *board.Board, st *board.State) (arena.GameState, float64) {
	kingSq := st.KingSquare(st.SideToMove)
	if board.KingNotInCheck(b, kingSq, st.SideToMove == board.Black) {
		return arena.Draw, eval.DrawEval
	}
	if st.SideToMove == board.Black {
		return arena.WhiteWin, eval.WhiteWinsEval
	}
	return arena.BlackWin, eval.BlackWinsEval
}

// backtrack recomputes n's eval as the extremum of its children's evals
// under side-to-move polarity, with forced-mate evals delayed one ply so a
// faster mate always wins the comparison, then walks toward the root until
// an ancestor's eval is unchanged.
func (e *Engine) backtrack(n *arena.Node) {
	a := e.arena
	for {
		start, count := n.Children()
		if count == 0 || start == arena.None {
			return
		}
		best := eval.ForcedMateDelay(a.Node(start).Eval())
		if n.Side == board.Black {
			for i := int32(1); i < count; i++ {
				if v := eval.ForcedMateDelay(a.Node(start + i).Eval()); v < best {
					best = v
				}
			}
		} else {
			for i := int32(1); i < count; i++ {
				if v := eval.ForcedMateDelay(a.Node(start + i).Eval()); v > best {
					best = v
				}
			}
		}
		if best == n.Eval() {
			return
		}
		n.SetEval(best)
		if n.Parent == arena.None {
			return
		}
		n = a.Node(n.Parent)
	}
}
