// Package testutil holds helpers shared by tests across the module.
package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// Wide is a 48-byte element, larger than the default large-element cutoff on
// every supported platform.
type Wide struct {
	ID  uint64
	Pad [5]uint64
}

// Empty is a zero-sized element.
type Empty struct{}

// Sequence returns [1, 2, ..., n].
func Sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// WideSequence returns n Wide elements whose IDs are 1..n and whose padding
// is derived from the ID, so any misplaced word is detectable.
func WideSequence(n int) []Wide {
	s := make([]Wide, n)
	for i := range s {
		id := uint64(i + 1)
		s[i].ID = id
		for j := range s[i].Pad {
			s[i].Pad[j] = id*31 + uint64(j)
		}
	}
	return s
}

// RandomBytes returns n bytes drawn from rng.
func RandomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	return b
}

// WriteTempFile writes data to a file named name in a fresh temporary
// directory and returns its path. Calls t.Fatal if the write fails.
//
// Example:
//
//	path := testutil.WriteTempFile(t, "records.bin", data)
func WriteTempFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// ReadFile returns the contents of path. Calls t.Fatal if the read fails.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}
