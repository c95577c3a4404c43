package rotate

import (
	"errors"
	"fmt"
)

var (
	// ErrSplitOutOfRange indicates a split point outside [0, len].
	ErrSplitOutOfRange = errors.New("rotate: split point out of range")
	// ErrInvalidConfig indicates a Config field holds an unsupported value.
	ErrInvalidConfig = errors.New("rotate: invalid config")
	// ErrInvalidDirection indicates a Direction other than DirLeft or DirRight.
	ErrInvalidDirection = errors.New("rotate: invalid direction")
	// ErrRecordSize indicates a record size that does not evenly divide the buffer.
	ErrRecordSize = errors.New("rotate: invalid record size")
)

// CheckSplit reports whether k is a valid split point for a sequence of n elements.
func CheckSplit(n, k int) error {
	if k < 0 || k > n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSplitOutOfRange, k, n)
	}
	return nil
}
