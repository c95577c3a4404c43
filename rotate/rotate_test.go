package rotate_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rotkit/internal/oracle"
	"github.com/joshuapare/rotkit/internal/testutil"
	"github.com/joshuapare/rotkit/rotate"
)

var allModes = []rotate.Mode{rotate.ModeAdaptive, rotate.ModeCycleOnly, rotate.ModeNoScratch}

func TestScenarios(t *testing.T) {
	t.Run("left by two", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		rotate.Left(s, 2)
		require.Equal(t, []int{3, 4, 5, 1, 2}, s)
	})
	t.Run("right by two", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		rotate.Right(s, 2)
		require.Equal(t, []int{4, 5, 1, 2, 3}, s)
	})
	t.Run("ten left by four", func(t *testing.T) {
		for _, mode := range allModes {
			s := testutil.Sequence(10)
			rotate.Rotate(s, 4, rotate.DirLeft, rotate.Config{Mode: mode})
			require.Equal(t, []int{5, 6, 7, 8, 9, 10, 1, 2, 3, 4}, s, "mode %s", mode)
		}
	})
	t.Run("empty", func(t *testing.T) {
		s := []int{}
		rotate.Left(s, 0)
		rotate.Right(s, 0)
		require.Empty(t, s)
		var nilSlice []string
		rotate.Left(nilSlice, 0)
		require.Nil(t, nilSlice)
	})
	t.Run("single", func(t *testing.T) {
		for _, k := range []int{0, 1} {
			s := []int{7}
			rotate.Left(s, k)
			require.Equal(t, []int{7}, s)
			rotate.Right(s, k)
			require.Equal(t, []int{7}, s)
		}
	})
}

func TestPermutation(t *testing.T) {
	for _, mode := range allModes {
		cfg := rotate.Config{Mode: mode}
		for n := 1; n <= 70; n++ {
			for k := 0; k <= n; k++ {
				orig := testutil.Sequence(n)

				left := slices.Clone(orig)
				rotate.Rotate(left, k, rotate.DirLeft, cfg)
				right := slices.Clone(orig)
				rotate.Rotate(right, k, rotate.DirRight, cfg)

				for i := range n {
					require.Equal(t, orig[(i+k)%n], left[i], "left mode=%s n=%d k=%d i=%d", mode, n, k, i)
					require.Equal(t, orig[((i-k)%n+n)%n], right[i], "right mode=%s n=%d k=%d i=%d", mode, n, k, i)
				}
			}
		}
	}
}

func TestInverseLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		n := 1 + rng.Intn(2000)
		mid := rng.Intn(n + 1)
		orig := testutil.RandomBytes(rng, n)

		s := slices.Clone(orig)
		rotate.Left(s, mid)
		rotate.Left(s, n-mid)
		require.Equal(t, orig, s, "n=%d mid=%d", n, mid)

		rotate.Left(s, mid)
		rotate.Right(s, mid)
		require.Equal(t, orig, s, "right undoes left, n=%d mid=%d", n, mid)
	}
}

func TestIdentity(t *testing.T) {
	orig := testutil.Sequence(33)
	for _, mode := range allModes {
		for _, dir := range []rotate.Direction{rotate.DirLeft, rotate.DirRight} {
			s := slices.Clone(orig)
			rotate.Rotate(s, 0, dir, rotate.Config{Mode: mode})
			require.Equal(t, orig, s)
			rotate.Rotate(s, len(s), dir, rotate.Config{Mode: mode})
			require.Equal(t, orig, s)
		}
	}
}

func TestCrossStrategyEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	configs := []rotate.Config{
		{},
		{Mode: rotate.ModeCycleOnly},
		{Mode: rotate.ModeNoScratch},
		{SmallTotal: -1, ScratchBytes: 1 << 20},
		{SmallTotal: -1, ScratchBytes: 16},
		{LargeElementBytes: 1},
	}
	for range 300 {
		n := rng.Intn(1500)
		k := rng.Intn(n + 1)
		orig := make([]uint32, n)
		for i := range orig {
			orig[i] = rng.Uint32()
		}

		var first []uint32
		for i, cfg := range configs {
			s := slices.Clone(orig)
			rotate.Rotate(s, k, rotate.DirRight, cfg)
			if i == 0 {
				first = s
				continue
			}
			require.Equal(t, first, s, "config %+v n=%d k=%d", cfg, n, k)
		}
	}
}

func TestLargeElements(t *testing.T) {
	orig := testutil.WideSequence(50)
	for _, mode := range allModes {
		for k := 0; k <= len(orig); k++ {
			require.NoError(t, oracle.Check(orig, k, rotate.DirLeft, rotate.Config{Mode: mode}))
			require.NoError(t, oracle.Check(orig, k, rotate.DirRight, rotate.Config{Mode: mode}))
		}
	}
}

func TestPointerElements(t *testing.T) {
	s := make([]*int, 40)
	for i := range s {
		v := i
		s[i] = &v
	}
	rotate.Right(s, 13)
	for i := range s {
		assert.Equal(t, ((i-13)%40+40)%40, *s[i])
	}

	strs := []string{"a", "b", "c", "d", "e", "f", "g"}
	rotate.Left(strs, 3)
	assert.Equal(t, []string{"d", "e", "f", "g", "a", "b", "c"}, strs)
}

func TestZeroSizedElements(t *testing.T) {
	s := make([]testutil.Empty, 100)
	rotate.Left(s, 37)
	rotate.Rotate(s, 99, rotate.DirRight, rotate.Config{Mode: rotate.ModeCycleOnly})
	require.Len(t, s, 100)
}

func TestOracleRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 500 {
		n := rng.Intn(3000)
		k := rng.Intn(n + 1)
		data := testutil.RandomBytes(rng, n)
		for _, mode := range allModes {
			cfg := rotate.Config{Mode: mode}
			require.NoError(t, oracle.Check(data, k, rotate.DirLeft, cfg))
			require.NoError(t, oracle.Check(data, k, rotate.DirRight, cfg))
		}
	}
}

func TestInvalidSplitPanics(t *testing.T) {
	s := []int{1, 2, 3}
	for _, k := range []int{-1, 4, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "k=%d", k)
				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, rotate.ErrSplitOutOfRange)
			}()
			rotate.Left(s, k)
		}()
		require.Equal(t, []int{1, 2, 3}, s, "no element moves on invalid input")
		require.Panics(t, func() { rotate.Right(s, k) })
	}
}

func TestInvalidArgumentsPanic(t *testing.T) {
	s := []int{1, 2, 3}
	require.Panics(t, func() { rotate.Rotate(s, 1, rotate.Direction(5), rotate.Config{}) })
	require.Panics(t, func() { rotate.Rotate(s, 1, rotate.DirLeft, rotate.Config{Mode: rotate.Mode(5)}) })
	require.Equal(t, []int{1, 2, 3}, s)
}

func TestCheckSplit(t *testing.T) {
	require.NoError(t, rotate.CheckSplit(0, 0))
	require.NoError(t, rotate.CheckSplit(5, 5))
	err := rotate.CheckSplit(5, 6)
	require.ErrorIs(t, err, rotate.ErrSplitOutOfRange)
	require.Contains(t, err.Error(), "6 not in [0, 5]")
}

func TestSubSliceStaysInBounds(t *testing.T) {
	backing := testutil.Sequence(40)
	for _, mode := range allModes {
		b := slices.Clone(backing)
		window := b[10:30]
		rotate.Rotate(window, 7, rotate.DirLeft, rotate.Config{Mode: mode})
		require.Equal(t, backing[:10], b[:10], "mode %s wrote before the window", mode)
		require.Equal(t, backing[30:], b[30:], "mode %s wrote after the window", mode)
		require.Equal(t, oracle.Left(backing[10:30], 7), window)
	}
}
