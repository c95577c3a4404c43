//go:build !unix && !windows

package mmfile

import (
	"fmt"
	"io"
)

// mapFile reads the entire file when mmap is not available.
func (m *Mapping) mapFile(size int) error {
	data := make([]byte, size)
	if _, err := io.ReadFull(m.f, data); err != nil {
		return fmt.Errorf("mmfile: read failed: %w", err)
	}
	m.data = data
	return nil
}

func (m *Mapping) flush() error {
	if _, err := m.f.WriteAt(m.data, 0); err != nil {
		return fmt.Errorf("mmfile: write-back failed: %w", err)
	}
	return m.f.Sync()
}

func (m *Mapping) unmap() error { return nil }
