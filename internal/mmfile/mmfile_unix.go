//go:build unix

package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func (m *Mapping) mapFile(size int) error {
	data, err := unix.Mmap(int(m.f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmfile: mmap failed: %w", err)
	}
	m.data = data
	m.mapped = true
	return nil
}

// flush syncs the whole mapping. The kernel only writes pages that are
// actually dirty, and darwin requires the original mapping address.
func (m *Mapping) flush() error {
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("mmfile: msync failed: %w", err)
	}
	return nil
}

func (m *Mapping) unmap() error {
	err := unix.Munmap(m.data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
