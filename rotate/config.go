package rotate

import (
	"fmt"
	"strings"
	"unsafe"
)

const wordSize = unsafe.Sizeof(uintptr(0))

const (
	// DefaultLargeElementBytes is the element size above which cycle-following
	// always wins: four machine words.
	DefaultLargeElementBytes = 4 * wordSize

	// DefaultScratchBytes is the auxiliary buffer budget: thirty-two machine words.
	DefaultScratchBytes = int(32 * wordSize)

	// DefaultSmallTotal is the window length below which cycle-following is
	// used regardless of the split.
	DefaultSmallTotal = 24

	// MaxScratchElems caps the auxiliary buffer in elements. It is the length
	// of the largest local array the auxiliary-buffer strategy declares.
	MaxScratchElems = 256

	// MaxScratchBytes caps the auxiliary buffer in bytes so that a generous
	// ScratchBytes cannot grow the stack frame without bound.
	MaxScratchBytes = 4096
)

// Direction selects which way elements move.
type Direction int

const (
	// DirLeft moves the element at i to (i - k) mod n.
	DirLeft Direction = iota
	// DirRight moves the element at i to (i + k) mod n.
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection parses "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Mode selects how the dispatcher chooses between strategies.
type Mode int

const (
	// ModeAdaptive picks a strategy per iteration from the element size and
	// the window shape.
	ModeAdaptive Mode = iota

	// ModeCycleOnly always follows permutation cycles. Smallest code path and
	// exactly n element moves, at some cost in throughput.
	ModeCycleOnly

	// ModeNoScratch never uses the auxiliary buffer or the short-window
	// cutoff: large elements follow cycles, everything else block-swaps.
	ModeNoScratch
)

func (m Mode) String() string {
	switch m {
	case ModeAdaptive:
		return "adaptive"
	case ModeCycleOnly:
		return "cycle"
	case ModeNoScratch:
		return "no-scratch"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adaptive", "auto":
		return ModeAdaptive, nil
	case "cycle", "cycle-only":
		return ModeCycleOnly, nil
	case "no-scratch", "noscratch", "size":
		return ModeNoScratch, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config holds the dispatcher's tuning parameters. The zero value is valid
// and behaves like DefaultConfig.
type Config struct {
	// Mode selects the strategy policy. Default: ModeAdaptive.
	Mode Mode

	// LargeElementBytes is the element size above which cycle-following is
	// used unconditionally. Zero means DefaultLargeElementBytes.
	LargeElementBytes uintptr

	// SmallTotal is the window length below which cycle-following is used.
	// Zero means DefaultSmallTotal; a negative value disables the cutoff.
	SmallTotal int

	// ScratchBytes is the auxiliary buffer budget in bytes. Zero means
	// DefaultScratchBytes; a negative value disables the auxiliary buffer.
	// The effective capacity is clamped to MaxScratchBytes and MaxScratchElems.
	ScratchBytes int
}

// DefaultConfig returns the tuning used by Left and Right.
func DefaultConfig() Config {
	return Config{
		Mode:              ModeAdaptive,
		LargeElementBytes: DefaultLargeElementBytes,
		SmallTotal:        DefaultSmallTotal,
		ScratchBytes:      DefaultScratchBytes,
	}
}

// Validate reports whether c can be used by the dispatcher.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeAdaptive, ModeCycleOnly, ModeNoScratch:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(c.Mode))
	}
}

func (c Config) withDefaults() Config {
	if c.LargeElementBytes == 0 {
		c.LargeElementBytes = DefaultLargeElementBytes
	}
	if c.SmallTotal == 0 {
		c.SmallTotal = DefaultSmallTotal
	}
	if c.ScratchBytes == 0 {
		c.ScratchBytes = DefaultScratchBytes
	}
	return c
}

// ScratchCapacity returns how many elements of elemSize bytes the auxiliary
// buffer can hold under c.
func (c Config) ScratchCapacity(elemSize uintptr) int {
	c = c.withDefaults()
	if c.ScratchBytes < 0 || elemSize == 0 {
		return 0
	}
	budget := min(c.ScratchBytes, MaxScratchBytes)
	return min(budget/int(elemSize), MaxScratchElems)
}
