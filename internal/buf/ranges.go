package buf

import "unsafe"

// Overlaps reports whether a and b share any element of memory.
// Empty slices and zero-sized element types never overlap.
func Overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}

// CopyDisjoint copies src into dst and returns the number of elements copied.
// The two ranges must not overlap; use Shift for moves inside one range.
func CopyDisjoint[T any](dst, src []T) int {
	if Overlaps(dst, src[:min(len(dst), len(src))]) {
		panic("buf: CopyDisjoint called with overlapping ranges")
	}
	return copy(dst, src)
}

// Shift moves n elements of s from offset from to offset to. Source and
// destination may overlap.
func Shift[T any](s []T, from, to, n int) {
	if n == 0 {
		return
	}
	if !Has(s, from, n) || !Has(s, to, n) {
		panic("buf: Shift out of range")
	}
	copy(s[to:to+n], s[from:from+n])
}

// SwapDisjoint exchanges the contents of a and b element by element.
// Both ranges must have the same length and must not overlap.
func SwapDisjoint[T any](a, b []T) {
	if len(a) != len(b) {
		panic("buf: SwapDisjoint length mismatch")
	}
	if Overlaps(a, b) {
		panic("buf: SwapDisjoint called with overlapping ranges")
	}
	b = b[:len(a)]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
