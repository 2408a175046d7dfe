package shell

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ianhowey12/Chess-Engine/internal/movegen"
	"github.com/ianhowey12/Chess-Engine/internal/search"
)

// VerifyPosition cross-checks the move generator against the external
// legality probe for one position: every generated move must pass the
// legality probe, and in a position with no generated moves no king move
// may pass it. The check probe is not consulted.
// Each move is probed on its own goroutine; the first failure wins.
func VerifyPosition(pos *search.Position) error {
	var pool movegen.Pool
	b := pos.Board
	st := pos.State
	movegen.Generate(&b, &st, &pool)

	if pool.N == 0 {
		// Nothing generated: there is no move to probe, but the probe
		// suite must agree the side to move has no escape square.
		kingSq := int(pos.State.KingSquare(pos.State.SideToMove))
		for to := 0; to < 64; to++ {
			if search.TestLegality(kingSq, to, pos) {
				return fmt.Errorf("no moves generated but king move to %d passes the legality probe", to)
			}
		}
		return nil
	}

	var g errgroup.Group
	for i := 0; i < pool.N; i++ {
		from := int(pool.Froms[i])
		to := int(pool.Tos[i])
		g.Go(func() error {
			probe := *pos
			if !search.TestLegality(from, to, &probe) {
				return fmt.Errorf("generated move %d->%d rejected by the legality probe", from, to)
			}
			return nil
		})
	}
	return g.Wait()
}
