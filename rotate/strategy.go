package rotate

import "fmt"

// Strategy identifies one of the data-movement strategies.
type Strategy int

const (
	// StrategyNone means the window is already rotated (L = 0 or R = 0).
	StrategyNone Strategy = iota
	// StrategyCycle follows the permutation cycles with one temporary element.
	StrategyCycle
	// StrategyAuxBuffer copies the shorter part through a local array.
	StrategyAuxBuffer
	// StrategyBlockSwap swaps equal-length blocks around the split point.
	StrategyBlockSwap
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyCycle:
		return "cycle"
	case StrategyAuxBuffer:
		return "aux-buffer"
	case StrategyBlockSwap:
		return "block-swap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Select returns the strategy the dispatcher uses for a window with l
// elements left of the split and r elements right of it.
//
// The policy, in order:
//  1. l == 0, r == 0 or a zero-sized element: StrategyNone.
//  2. ModeCycleOnly, or elemSize above LargeElementBytes: StrategyCycle.
//  3. ModeNoScratch: StrategyBlockSwap.
//  4. l+r below SmallTotal: StrategyCycle.
//  5. min(l, r) within the scratch capacity: StrategyAuxBuffer.
//  6. Otherwise StrategyBlockSwap.
func Select(l, r int, elemSize uintptr, cfg Config) Strategy {
	if l <= 0 || r <= 0 || elemSize == 0 {
		return StrategyNone
	}
	cfg = cfg.withDefaults()
	if cfg.Mode == ModeCycleOnly || elemSize > cfg.LargeElementBytes {
		return StrategyCycle
	}
	if cfg.Mode == ModeNoScratch {
		return StrategyBlockSwap
	}
	if cfg.SmallTotal > 0 && l+r < cfg.SmallTotal {
		return StrategyCycle
	}
	if min(l, r) <= cfg.ScratchCapacity(elemSize) {
		return StrategyAuxBuffer
	}
	return StrategyBlockSwap
}

// Step is one unit of work performed by the dispatcher on the window
// [Base, Base+Left+Right) whose split point sits at Base+Left.
type Step struct {
	Strategy Strategy
	Base     int
	Left     int
	Right    int

	// Cycles is the number of permutation cycles for a StrategyCycle step.
	// Only Plan fills it in.
	Cycles int

	// Rounds is the number of consecutive block-swap rounds a
	// StrategyBlockSwap step performs. Each round exchanges min(Left, Right)
	// elements and shrinks the longer side by that much.
	Rounds int
}

// Swapped returns the number of elements a block-swap step moves into
// their final position.
func (s Step) Swapped() int {
	if s.Strategy != StrategyBlockSwap {
		return 0
	}
	return s.Rounds * min(s.Left, s.Right)
}

func (s Step) String() string {
	switch s.Strategy {
	case StrategyCycle:
		return fmt.Sprintf("%s base=%d left=%d right=%d cycles=%d",
			s.Strategy, s.Base, s.Left, s.Right, s.Cycles)
	case StrategyBlockSwap:
		return fmt.Sprintf("%s base=%d left=%d right=%d rounds=%d swap=%d",
			s.Strategy, s.Base, s.Left, s.Right, s.Rounds, s.Swapped())
	default:
		return fmt.Sprintf("%s base=%d left=%d right=%d", s.Strategy, s.Base, s.Left, s.Right)
	}
}
