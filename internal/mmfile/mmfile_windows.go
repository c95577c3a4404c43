//go:build windows

package mmfile

import (
	"fmt"
	"io"

	"golang.org/x/sys/windows"
)

func (m *Mapping) mapFile(size int) error {
	data := make([]byte, size)
	if _, err := io.ReadFull(m.f, data); err != nil {
		return fmt.Errorf("mmfile: read failed: %w", err)
	}
	m.data = data
	return nil
}

// flush writes the in-memory copy back and forces it through the OS cache
// with FlushFileBuffers.
func (m *Mapping) flush() error {
	if _, err := m.f.WriteAt(m.data, 0); err != nil {
		return fmt.Errorf("mmfile: write-back failed: %w", err)
	}
	return windows.FlushFileBuffers(windows.Handle(m.f.Fd()))
}

func (m *Mapping) unmap() error { return nil }
