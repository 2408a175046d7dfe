// Package search implements the parallel best-first search: a scheduler
// over long-lived workers, each owning a priority queue of arena node
// indices, and the expansion engine that grows the shared tree.
package search

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ianhowey12/Chess-Engine/internal/arena"
	"github.com/ianhowey12/Chess-Engine/internal/board"
	"github.com/ianhowey12/Chess-Engine/internal/eval"
	"github.com/ianhowey12/Chess-Engine/internal/movegen"
	"github.com/ianhowey12/Chess-Engine/internal/queue"
)

// DepthStep is the score cost of one ply: a child is enqueued at its
// parent's score plus this constant, so deeper nodes drain later.
const DepthStep = 10.0

const rootScore = 0.0

var (
	errBadParams = errors.New("init parameters out of range")
	errNotReady  = errors.New("init has not completed")
	errNoSession = errors.New("no evaluation has been set up")
)

type replayMove struct {
	from int8
	to   int8
}

// worker owns one queue, one scratch board and the per-expansion buffers.
// Workers 1..N-1 are goroutines looping on the atomic flags; worker 0 is
// the driver and only runs during session setup.
type worker struct {
	id      int
	run     atomic.Bool
	running atomic.Bool
	live    atomic.Bool

	queue   queue.Queue
	scratch board.Board
	pool    movegen.Pool

	path        []replayMove
	undos       []board.Undo
	childStates [movegen.MaxMoves]board.State
}

// Engine owns the arena, the stats and the workers for one process-wide
// search instance. It never logs; failures surface as error returns for
// the caller to report.
type Engine struct {
	arena *arena.Arena
	stats arena.Stats

	workers    []*worker
	seedReps   int
	depthLimit int32

	numRunning atomic.Int32
	wg         sync.WaitGroup

	initDone  bool
	setupDone bool
	rootPos   Position
}

// NewEngine returns an engine with no arena; Init must be called before
// any session.
func NewEngine() *Engine {
	return &Engine{}
}

// Init allocates the arena and move pool and spawns the workers. Calling
// it again tears the previous workers down and reallocates. Parameter
// bounds follow the external contract; a failed Init changes no state and
// leaves any previous workers running.
func (e *Engine) Init(totalNodes, totalMoves, threadCount, seedReps int) error {
	if totalNodes < 1000 || totalNodes > 2000000000 {
		return errBadParams
	}
	if totalMoves < 1000 || totalMoves > 2000000000 {
		return errBadParams
	}
	if threadCount < 2 || threadCount > 100 {
		return errBadParams
	}
	if seedReps < 0 || seedReps > 2000000000 {
		return errBadParams
	}

	e.setupDone = false
	e.Close()

	e.seedReps = seedReps
	e.arena = arena.New(totalNodes, totalMoves)
	e.numRunning.Store(0)

	perWorker := totalNodes / threadCount
	e.workers = make([]*worker, threadCount)
	for i := range e.workers {
		w := &worker{
			id:    i,
			queue: queue.New(perWorker),
			path:  make([]replayMove, 0, 128),
			undos: make([]board.Undo, 0, 128),
		}
		e.workers[i] = w
	}
	for i := 1; i < threadCount; i++ {
		w := e.workers[i]
		w.live.Store(true)
		e.wg.Add(1)
		go w.loop(e)
	}

	e.initDone = true
	return nil
}

// Close stops and joins all workers. The arena stays allocated; a later
// Init replaces it.
func (e *Engine) Close() {
	for _, w := range e.workers {
		if w.id != 0 {
			w.run.Store(false)
			w.live.Store(false)
		}
	}
	e.wg.Wait()
	e.workers = nil
	e.initDone = false
}

// loop is the long-lived body of workers 1..N-1: search while run is set,
// acknowledge a stop by dropping the running flag, otherwise idle.
func (w *worker) loop(e *Engine) {
	defer e.wg.Done()
	for w.live.Load() {
		if w.run.Load() {
			e.runSearch(w)
		} else if w.running.Load() {
			w.running.Store(false)
			e.numRunning.Add(-1)
		} else {
			runtime.Gosched()
		}
	}
	if w.running.Load() {
		w.running.Store(false)
		e.numRunning.Add(-1)
	}
}

// runSearch drains the worker's queue while the run flag stays set. An
// empty queue is not an error; the worker simply waits for the session to
// end. Running out of arena or move-pool space aborts the expansion; the
// worker expands nothing more and idles until the run flag is cleared, then
// returns to its idle loop.
func (e *Engine) runSearch(w *worker) {
	for w.run.Load() {
		index, ok := w.queue.Pop()
		if !ok {
			runtime.Gosched()
			continue
		}
		e.stats.NodesExamined.Add(1)
		if !e.expand(w, index) {
			for w.run.Load() {
				runtime.Gosched()
			}
			return
		}
	}
}

// seedSearch runs up to reps expansions on the driver worker.
func (e *Engine) seedSearch(w *worker, reps int) {
	for i := 0; i < reps; i++ {
		index, ok := w.queue.Pop()
		if !ok {
			return
		}
		e.stats.NodesExamined.Add(1)
		if !e.expand(w, index) {
			return
		}
	}
}

// SetupEvaluation resets the arena cursors, builds the root from pos,
// expands it once on worker 0 plus the configured seed budget, and
// round-robins worker 0's queue across the other workers.
func (e *Engine) SetupEvaluation(depthLimit int, pos Position) error {
	if !e.initDone {
		return errNotReady
	}
	e.haltWorkers()

	e.depthLimit = int32(depthLimit)
	e.arena.Reset()
	e.stats.Reset()
	for _, w := range e.workers {
		w.queue.Clear()
		w.scratch = pos.Board
	}

	rootIndex, ok := e.arena.AllocNodes(1)
	if !ok || rootIndex != 0 {
		return errNotReady
	}
	e.stats.NodesAdded.Add(1)

	root := e.arena.Root()
	root.Castle = pos.State.Castle
	root.EnPassant = pos.State.EnPassant
	root.FiftyMove = pos.State.FiftyMove
	root.WhiteKing = pos.State.WhiteKingSq
	root.BlackKing = pos.State.BlackKingSq
	root.From = pos.From
	root.To = pos.To
	root.Side = pos.State.SideToMove
	root.State = pos.Game
	root.Depth = 0
	root.Parent = arena.None
	root.PublishChildren(arena.None, 0)
	root.MoveStart = 0
	root.NumMoves = 0
	root.Score = rootScore
	root.SetEval(eval.Full(&pos.Board))

	w0 := e.workers[0]
	w0.queue.Push(0, rootScore)
	e.seedSearch(w0, 1+e.seedReps)

	if len(e.workers) > 1 {
		target := 1
		for {
			index, ok := w0.queue.Pop()
			if !ok {
				break
			}
			e.workers[target].queue.Push(index, e.arena.Node(index).Score)
			target++
			if target == len(e.workers) {
				target = 1
			}
		}
	}

	e.rootPos = pos
	e.setupDone = true
	return nil
}

// EvaluateStart sets every non-driver worker running. The session persists
// until EvaluateStop.
func (e *Engine) EvaluateStart() error {
	if !e.setupDone {
		return errNoSession
	}
	e.numRunning.Store(int32(len(e.workers) - 1))
	for _, w := range e.workers {
		if w.id != 0 {
			w.running.Store(true)
			w.run.Store(true)
		}
	}
	return nil
}

// EvaluateStop clears the run flags and spins until every worker has
// acknowledged; the tree is then stable and Output may snapshot it.
func (e *Engine) EvaluateStop() error {
	if !e.initDone {
		return errNotReady
	}
	e.haltWorkers()
	return nil
}

// EvaluateTime runs a session for the given wall-clock duration.
func (e *Engine) EvaluateTime(d time.Duration) error {
	if err := e.EvaluateStart(); err != nil {
		return err
	}
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
	return e.EvaluateStop()
}

func (e *Engine) haltWorkers() {
	for _, w := range e.workers {
		if w.id != 0 {
			w.run.Store(false)
		}
	}
	for e.numRunning.Load() > 0 {
		runtime.Gosched()
	}
}

// Stats exposes the session counters read-only.
func (e *Engine) Stats() *arena.Stats {
	return &e.stats
}
