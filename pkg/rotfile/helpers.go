package rotfile

import (
	"fmt"
	"os"

	"github.com/joshuapare/rotkit/internal/writer"
)

// copyFile copies src to dst atomically, keeping the source permissions.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	w := &writer.FileWriter{Path: dst, Perm: info.Mode().Perm()}
	if err := w.WriteFrom(srcFile); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
