// Package writer writes files atomically.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileWriter writes to a filesystem path atomically. Readers of Path see
// either the old contents or the complete new contents, never a partial file.
type FileWriter struct {
	Path string

	// Perm is applied to a newly written file. Zero means 0o644.
	Perm os.FileMode
}

// Write replaces the file at Path with buf.
func (w *FileWriter) Write(buf []byte) error {
	return w.WriteFrom(bytes.NewReader(buf))
}

// WriteFrom streams r into a temp file next to Path and renames it over Path.
func (w *FileWriter) WriteFrom(r io.Reader) error {
	// Same directory so the rename stays on one filesystem
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".rotkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, copyErr := io.Copy(tmpFile, r); copyErr != nil {
		return fmt.Errorf("write temp file: %w", copyErr)
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
