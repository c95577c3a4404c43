// Package mmfile provides platform-specific helpers for mapping files
// read-write so they can be mutated in place.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrClosed is returned by operations on a closed Mapping.
var ErrClosed = errors.New("mmfile: mapping closed")

// Mapping is a writable view of a whole file. On unix systems it is backed by
// a shared memory mapping; elsewhere the file is read into memory and written
// back by Flush.
//
// NOT thread-safe.
type Mapping struct {
	f      *os.File
	data   []byte
	mapped bool
}

// OpenWritable opens path read-write and maps its full contents.
// A zero-length file yields an empty, valid Mapping.
func OpenWritable(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := info.Size()
	if size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	m := &Mapping{f: f}
	if size == 0 {
		m.data = []byte{}
		return m, nil
	}
	if err := m.mapFile(int(size)); err != nil {
		_ = f.Close()
		return nil, err
	}
	return m, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Size returns the length of the mapping in bytes.
func (m *Mapping) Size() int { return len(m.data) }

// Mapped reports whether the contents are backed by a memory mapping rather
// than an in-memory copy.
func (m *Mapping) Mapped() bool { return m.mapped }

// Flush writes modified contents to stable storage.
func (m *Mapping) Flush() error {
	if m.f == nil {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return m.flush()
}

// Close releases the mapping and the file. It does not flush.
func (m *Mapping) Close() error {
	if m.f == nil {
		return nil
	}
	var unmapErr error
	if m.mapped {
		unmapErr = m.unmap()
	}
	m.data = nil
	m.mapped = false
	err := m.f.Close()
	m.f = nil
	return errors.Join(unmapErr, err)
}
