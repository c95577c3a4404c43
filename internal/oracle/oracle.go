// Package oracle provides a reference rotation and a randomized differential
// checker that compares package rotate against it.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/joshuapare/rotkit/rotate"
)

// ErrMismatch indicates rotate produced a different result than the reference.
var ErrMismatch = errors.New("oracle: rotation mismatch")

const (
	defaultIterations = 1000
	defaultMaxLen     = 512
)

// Left returns a new slice holding s rotated left by mid.
func Left[T any](s []T, mid int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[mid:]...)
	return append(out, s[:mid]...)
}

// Right returns a new slice holding s rotated right by k.
func Right[T any](s []T, k int) []T {
	return Left(s, len(s)-k)
}

// Check rotates a copy of seq with rotate.Rotate and compares it to the
// reference. The returned error wraps ErrMismatch and names the first
// differing index.
func Check[T comparable](seq []T, k int, dir rotate.Direction, cfg rotate.Config) error {
	var want []T
	if dir == rotate.DirRight {
		want = Right(seq, k)
	} else {
		want = Left(seq, k)
	}
	got := slices.Clone(seq)
	rotate.Rotate(got, k, dir, cfg)
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: index %d of %d (k=%d %s %s)",
				ErrMismatch, i, len(seq), k, dir, cfg.Mode)
		}
	}
	return nil
}

// Options controls a Run.
type Options struct {
	// Iterations is the number of random sequences generated. Default: 1000.
	Iterations int

	// MaxLen bounds the generated sequence length. Default: 512.
	MaxLen int

	// Seed seeds the generator; runs with the same options are identical.
	Seed int64

	// Modes lists the dispatcher modes to exercise. Default: all modes.
	Modes []rotate.Mode

	// Config carries the remaining tuning; its Mode is overridden per run.
	Config rotate.Config
}

// Report summarises a Run.
type Report struct {
	Iterations int    `json:"iterations"`
	Rotations  int    `json:"rotations"`
	Seed       int64  `json:"seed"`
	Failure    string `json:"failure,omitempty"`
}

// Run generates random sequences of several element types and checks every
// configured mode in both directions against the reference. It stops at the
// first mismatch, returning an error wrapping ErrMismatch, or when ctx is done.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = defaultIterations
	}
	if opts.MaxLen <= 0 {
		opts.MaxLen = defaultMaxLen
	}
	if len(opts.Modes) == 0 {
		opts.Modes = []rotate.Mode{rotate.ModeAdaptive, rotate.ModeCycleOnly, rotate.ModeNoScratch}
	}
	if err := opts.Config.Validate(); err != nil {
		return Report{}, err
	}

	rep := Report{Seed: opts.Seed}
	rng := rand.New(rand.NewSource(opts.Seed))
	for it := range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		n := rng.Intn(opts.MaxLen + 1)
		k := rng.Intn(n + 1)

		bytes := make([]byte, n)
		words := make([]uint64, n)
		wides := make([]wide, n)
		for i := range n {
			v := rng.Uint64()
			bytes[i] = byte(v)
			words[i] = v
			wides[i] = wide{v, v >> 1, v >> 2, v >> 3, v >> 4, uint64(i)}
		}
		empties := make([]struct{}, n)

		for _, mode := range opts.Modes {
			cfg := opts.Config
			cfg.Mode = mode
			for _, dir := range []rotate.Direction{rotate.DirLeft, rotate.DirRight} {
				err := errors.Join(
					Check(bytes, k, dir, cfg),
					Check(words, k, dir, cfg),
					Check(wides, k, dir, cfg),
					Check(empties, k, dir, cfg),
				)
				rep.Rotations += 4
				if err != nil {
					rep.Iterations = it + 1
					rep.Failure = err.Error()
					return rep, err
				}
			}
		}
		rep.Iterations = it + 1
	}
	return rep, nil
}

// wide is larger than the default large-element cutoff.
type wide [6]uint64
