package rotate

import "github.com/joshuapare/rotkit/internal/buf"

// blockSwapRound performs one round of the block-swap strategy on w split at
// left: the min(left, right) elements on each side of the split trade places.
// The blocks are adjacent and equal-length, so they never overlap.
//
// When left >= right the block just before the split is moved to the end of
// w, which is its final position. When left < right the block just after the
// split is moved to the start of w.
func blockSwapRound[T any](w []T, left int) {
	n := min(left, len(w)-left)
	buf.SwapDisjoint(w[left-n:left], w[left:left+n])
}

// blockSwap performs rounds consecutive block-swap rounds on w split at left.
// rounds must not exceed max(left, right) / min(left, right).
func blockSwap[T any](w []T, left, rounds int) {
	right := len(w) - left
	if left >= right {
		for range rounds {
			blockSwapRound(w, left)
			w = w[:left]
			left -= right
		}
		return
	}
	for range rounds {
		blockSwapRound(w, left)
		w = w[left:]
	}
}
