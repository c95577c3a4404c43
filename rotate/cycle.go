package rotate

// cycleRotate exchanges w[:left] and w[left:] by following the cycles of the
// permutation that sends offset i to (i - left) mod len(w). It returns the
// number of cycles walked, which is gcd(len(w), len(w)-left).
//
// Requires 0 < left < len(w).
//
// Offsets stay in [0, len(w)): stepping by right is only taken while
// i < left, and stepping back by left only while i >= left.
func cycleRotate[T any](w []T, left int) int {
	right := len(w) - left

	// First cycle, starting at offset 0. The smallest nonzero offset it
	// revisits after wrapping is the gcd, i.e. the number of cycles.
	tmp := w[0]
	i := right
	cycles := right
	for {
		tmp, w[i] = w[i], tmp
		if i >= left {
			i -= left
			if i == 0 {
				w[0] = tmp
				break
			}
			if i < cycles {
				cycles = i
			}
		} else {
			i += right
		}
	}

	// Remaining cycles start at 1 .. cycles-1. Each start is below the gcd,
	// which divides both left and right, so start+right < len(w).
	for start := 1; start < cycles; start++ {
		tmp = w[start]
		i = start + right
		for {
			tmp, w[i] = w[i], tmp
			if i >= left {
				i -= left
				if i == start {
					w[start] = tmp
					break
				}
			} else {
				i += right
			}
		}
	}
	return cycles
}
