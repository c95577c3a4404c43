package rotate

import (
	"fmt"
	"unsafe"
)

// Records rotates data in place as a sequence of fixed-size records: k and
// the result are in units of recordSize bytes.
//
// Record sizes with a matching array type (1, 2, 4, ..., 256 bytes) are
// rotated as []([N]byte) so the record size drives strategy selection. Other
// sizes rotate the underlying bytes by k*recordSize, which is the same
// permutation.
func Records(data []byte, recordSize, k int, dir Direction, cfg Config) error {
	records, err := CheckRecords(len(data), recordSize, k)
	if err != nil {
		return err
	}
	if _, _, err := split(records, k, dir, cfg); err != nil {
		return err
	}

	switch recordSize {
	case 1:
		Rotate(data, k, dir, cfg)
	case 2:
		Rotate(asRecords[[2]byte](data), k, dir, cfg)
	case 4:
		Rotate(asRecords[[4]byte](data), k, dir, cfg)
	case 8:
		Rotate(asRecords[[8]byte](data), k, dir, cfg)
	case 16:
		Rotate(asRecords[[16]byte](data), k, dir, cfg)
	case 32:
		Rotate(asRecords[[32]byte](data), k, dir, cfg)
	case 64:
		Rotate(asRecords[[64]byte](data), k, dir, cfg)
	case 128:
		Rotate(asRecords[[128]byte](data), k, dir, cfg)
	case 256:
		Rotate(asRecords[[256]byte](data), k, dir, cfg)
	default:
		Rotate(data, k*recordSize, dir, cfg)
	}
	return nil
}

// PlanRecords returns the steps Records performs on size bytes of
// recordSize-byte records.
func PlanRecords(size, recordSize, k int, dir Direction, cfg Config) ([]Step, error) {
	if _, err := CheckRecords(size, recordSize, k); err != nil {
		return nil, err
	}
	elem, scale := recordShape(recordSize)
	return Plan(size/int(elem), k*scale, dir, elem, cfg)
}

// CheckRecords validates a rotation by k of size bytes of recordSize-byte
// records and returns the record count.
func CheckRecords(size, recordSize, k int) (int, error) {
	if recordSize <= 0 || size%recordSize != 0 {
		return 0, fmt.Errorf("%w: %d does not divide %d bytes", ErrRecordSize, recordSize, size)
	}
	records := size / recordSize
	if err := CheckSplit(records, k); err != nil {
		return 0, err
	}
	return records, nil
}

// recordShape returns the element size Records rotates with for a record
// size, and how many elements make up one record.
func recordShape(recordSize int) (elem uintptr, scale int) {
	switch recordSize {
	case 1, 2, 4, 8, 16, 32, 64, 128, 256:
		return uintptr(recordSize), 1
	default:
		return 1, recordSize
	}
}

// asRecords reinterprets data as a slice of byte arrays. R must be a byte
// array type, so alignment is 1 and any length multiple is valid.
func asRecords[R any](data []byte) []R {
	if len(data) == 0 {
		return nil
	}
	var zero R
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*R)(unsafe.Pointer(unsafe.SliceData(data))), len(data)/size)
}
