// Package buf contains bounds-checked helpers for working on sub-ranges of a
// single slice without leaving its extent.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckWindow validates that n elements starting at offset fit in a range of
// length size. Returns the end offset if valid, or an error describing the
// specific failure (negative input, overflow or out of bounds).
//
//	end, err := buf.CheckWindow(len(s), base, left+right)
//	if err != nil {
//	    return fmt.Errorf("window: %w", err)
//	}
//	// s[base:end] is addressable
func CheckWindow(size, offset, n int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	end, ok := AddOverflowSafe(offset, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + count=%d", offset, n)
	}
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, size)
	}
	return end, nil
}

// Window returns the sub-slice s[off:off+n] if it fits within len(s).
// The returned slice has its capacity clipped to n so appends cannot
// spill into the neighbouring elements.
func Window[T any](s []T, off, n int) ([]T, bool) {
	end, err := CheckWindow(len(s), off, n)
	if err != nil {
		return nil, false
	}
	return s[off:end:end], true
}

// Has reports whether s[off:off+n] is within bounds.
func Has[T any](s []T, off, n int) bool {
	_, ok := Window(s, off, n)
	return ok
}
