// Package rotate provides in-place rotation of slices of any element type.
//
// # Overview
//
// Rotating a slice exchanges the two parts on either side of a split point
// without allocating a buffer proportional to the slice. Left rotation by mid
// moves s[mid:] to the front; right rotation by k moves the last k elements
// to the front:
//
//	s := []int{1, 2, 3, 4, 5}
//	rotate.Left(s, 2)  // [3 4 5 1 2]
//	rotate.Right(s, 2) // [1 2 3 4 5]
//
// Both directions reduce to the same problem: a window split into a Left
// part of length L and a Right part of length R whose contents must trade
// places.
//
// # Strategies
//
// A dispatcher loop picks one of three strategies per iteration (see Select):
//
//   - Cycle-following: the rotation is a permutation made of gcd(L+R, R)
//     cycles. Each cycle is walked carrying a single element. Used for large
//     elements, short windows, and whenever ModeCycleOnly is configured.
//   - Auxiliary buffer: the shorter part is copied into a fixed-size local
//     array, the longer part is shifted over, and the copy is written back.
//     Used when the shorter part fits in the scratch capacity.
//   - Block swap: equal-length blocks adjacent to the split point are swapped,
//     shrinking the longer part by the length of the shorter one. The
//     reduced problem goes back to the dispatcher.
//
// The cycle-following and auxiliary-buffer strategies always finish the
// rotation. Block swap is the subtractive Euclidean algorithm on (L, R) and
// hands a smaller window back after each run of rounds.
//
// # Configuration
//
// Thresholds are tuning parameters, not correctness constants. Config holds
// them; the zero Config selects DefaultConfig. Plan reports the exact steps
// Rotate would take for a given length, split and element size.
//
// # Errors
//
// A split point outside [0, len(s)] is a caller bug: Rotate, Left and Right
// panic with an error wrapping ErrSplitOutOfRange before any element moves.
// Use CheckSplit to validate untrusted input first. Records returns errors
// instead of panicking, since its input usually comes from outside.
//
// # Concurrency
//
// Rotation is synchronous and assumes exclusive access to the slice for the
// duration of the call. Concurrent readers or writers of the same slice are a
// data race; nothing in this package locks.
package rotate
