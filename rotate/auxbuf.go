package rotate

import "github.com/joshuapare/rotkit/internal/buf"

// Local scratch array tiers. The smallest tier that holds the shorter part is
// declared, so short moves do not pay for zeroing the largest array.
const (
	scratchTierSmall  = 16
	scratchTierMedium = 64
)

// auxRotate exchanges w[:left] and w[left:] by parking the shorter part in a
// local array. Requires 0 < left < len(w) and min(left, len(w)-left) <=
// MaxScratchElems.
func auxRotate[T any](w []T, left int) {
	n := min(left, len(w)-left)
	switch {
	case n <= scratchTierSmall:
		var scratch [scratchTierSmall]T
		auxRotateWith(w, scratch[:n], left)
	case n <= scratchTierMedium:
		var scratch [scratchTierMedium]T
		auxRotateWith(w, scratch[:n], left)
	case n <= MaxScratchElems:
		var scratch [MaxScratchElems]T
		auxRotateWith(w, scratch[:n], left)
	default:
		panic("rotate: auxiliary buffer too small for window")
	}
}

// auxRotateWith performs the three moves of the auxiliary-buffer strategy.
// len(scratch) must equal the length of the shorter part.
func auxRotateWith[T any](w, scratch []T, left int) {
	right := len(w) - left
	if left <= right {
		buf.CopyDisjoint(scratch, w[:left])
		buf.Shift(w, left, 0, right)
		buf.CopyDisjoint(w[right:], scratch)
		return
	}
	buf.CopyDisjoint(scratch, w[left:])
	buf.Shift(w, 0, right, left)
	buf.CopyDisjoint(w[:right], scratch)
}
