package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rotkit/rotate"
)

func TestReferenceRotations(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5}
	require.Equal(t, []int{3, 4, 5, 1, 2}, Left(seq, 2))
	require.Equal(t, []int{4, 5, 1, 2, 3}, Right(seq, 2))
	require.Equal(t, seq, Left(seq, 0))
	require.Equal(t, seq, Left(seq, 5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, seq, "reference must not mutate its input")
	require.Empty(t, Left([]int{}, 0))
}

func TestCheck(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for k := 0; k <= len(seq); k++ {
		require.NoError(t, Check(seq, k, rotate.DirLeft, rotate.Config{}))
		require.NoError(t, Check(seq, k, rotate.DirRight, rotate.Config{Mode: rotate.ModeCycleOnly}))
	}
}

func TestRun(t *testing.T) {
	rep, err := Run(context.Background(), Options{Iterations: 200, MaxLen: 300, Seed: 7})
	require.NoError(t, err)
	require.Equal(t, 200, rep.Iterations)
	require.Equal(t, 200*3*2*4, rep.Rotations)
	require.Empty(t, rep.Failure)
}

func TestRunTinyThresholds(t *testing.T) {
	// Force every strategy switch to happen on short windows.
	cfg := rotate.Config{SmallTotal: -1, ScratchBytes: 3, LargeElementBytes: 4}
	_, err := Run(context.Background(), Options{Iterations: 300, MaxLen: 64, Seed: 99, Config: cfg})
	require.NoError(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Run(ctx, Options{Iterations: 10})
	require.True(t, errors.Is(err, context.Canceled))
	require.Zero(t, rep.Iterations)
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Options{Config: rotate.Config{Mode: rotate.Mode(42)}})
	require.ErrorIs(t, err, rotate.ErrInvalidConfig)
}
