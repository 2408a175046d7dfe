// Package eval implements the static evaluator: a per-piece per-square
// table built once at init, a full-board sum for the root, and an
// incremental delta for a single candidate move.
package eval

// Terminal evals sit far outside any reachable material score; the
// thresholds classify forced-mate evals after the mate-delay adjustment.
const (
	WhiteWinsEval = 1e9
	BlackWinsEval = -1e9

	WhiteWinsThreshold = 1e8
	BlackWinsThreshold = -1e8

	ForcedMateIncrement = 1000.0

	DrawEval = 0.0
)

// ForcedMateDelay pushes a forced-mate eval one ply further from the
// winning side, so a faster mate is always preferred to a slower one.
func ForcedMateDelay(e float64) float64 {
	if e >= WhiteWinsThreshold {
		return e - ForcedMateIncrement
	}
	if e <= BlackWinsThreshold {
		return e + ForcedMateIncrement
	}
	return e
}
