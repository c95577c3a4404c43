package rotate

import (
	"unsafe"

	"github.com/joshuapare/rotkit/internal/buf"
)

// Left rotates s in place so that s[mid] becomes the first element.
// It panics if mid is outside [0, len(s)].
func Left[T any](s []T, mid int) {
	Rotate(s, mid, DirLeft, Config{})
}

// Right rotates s in place so that s[len(s)-k] becomes the first element.
// It panics if k is outside [0, len(s)].
func Right[T any](s []T, k int) {
	Rotate(s, k, DirRight, Config{})
}

// Rotate rotates s in place by k positions in direction dir, choosing
// strategies according to cfg. It panics with an error wrapping
// ErrSplitOutOfRange, ErrInvalidDirection or ErrInvalidConfig before moving
// any element if the arguments are invalid.
func Rotate[T any](s []T, k int, dir Direction, cfg Config) {
	l, r, err := split(len(s), k, dir, cfg)
	if err != nil {
		panic(err)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return
	}
	dispatch(0, l, r, size, cfg.withDefaults(), func(st Step) {
		execute(s, st)
	})
}

// Plan returns the steps Rotate performs on a sequence of n elements of
// elemSize bytes. A zero elemSize, k == 0 or k == n produce no steps.
func Plan(n, k int, dir Direction, elemSize uintptr, cfg Config) ([]Step, error) {
	l, r, err := split(n, k, dir, cfg)
	if err != nil {
		return nil, err
	}
	var steps []Step
	dispatch(0, l, r, elemSize, cfg.withDefaults(), func(st Step) {
		if st.Strategy == StrategyCycle {
			st.Cycles = gcd(st.Left+st.Right, st.Right)
		}
		steps = append(steps, st)
	})
	return steps, nil
}

// split validates the arguments and converts a rotation by k into the
// lengths of the two parts that trade places.
func split(n, k int, dir Direction, cfg Config) (l, r int, err error) {
	if err := CheckSplit(n, k); err != nil {
		return 0, 0, err
	}
	if !dir.valid() {
		return 0, 0, ErrInvalidDirection
	}
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}
	if dir == DirRight {
		return n - k, k, nil
	}
	return k, n - k, nil
}

// dispatch runs the strategy loop over the window [base, base+l+r) and hands
// each step to exec in order. Cycle and auxiliary-buffer steps finish the
// window. A block-swap step covers the whole inner loop in which the same
// side stays the longer one, so the loop runs O(log(l+r)) times.
func dispatch(base, l, r int, size uintptr, cfg Config, exec func(Step)) {
	for {
		switch st := Select(l, r, size, cfg); st {
		case StrategyNone:
			return
		case StrategyCycle, StrategyAuxBuffer:
			exec(Step{Strategy: st, Base: base, Left: l, Right: r})
			return
		case StrategyBlockSwap:
			if l >= r {
				// Each round lands r elements at the end of the window;
				// the window keeps its base.
				rounds := l / r
				exec(Step{Strategy: st, Base: base, Left: l, Right: r, Rounds: rounds})
				l -= rounds * r
			} else {
				// Each round lands l elements at the start of the window;
				// the window keeps its end.
				rounds := r / l
				exec(Step{Strategy: st, Base: base, Left: l, Right: r, Rounds: rounds})
				base += rounds * l
				r -= rounds * l
			}
		}
	}
}

// execute applies one dispatcher step to s.
func execute[T any](s []T, st Step) {
	w, ok := buf.Window(s, st.Base, st.Left+st.Right)
	if !ok {
		panic("rotate: step outside slice bounds")
	}
	switch st.Strategy {
	case StrategyCycle:
		cycleRotate(w, st.Left)
	case StrategyAuxBuffer:
		auxRotate(w, st.Left)
	case StrategyBlockSwap:
		blockSwap(w, st.Left, st.Rounds)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
