package rotate_test

import (
	"fmt"
	"testing"

	"github.com/joshuapare/rotkit/internal/testutil"
	"github.com/joshuapare/rotkit/rotate"
)

// Sub-benchmarks are named <size>/<mode> so scripts/benchmark_parser.go can
// line the modes up against each other.
var benchModes = []rotate.Mode{rotate.ModeAdaptive, rotate.ModeCycleOnly, rotate.ModeNoScratch}

func BenchmarkRotateBytes(b *testing.B) {
	for _, n := range []int{64, 4096, 1 << 20} {
		data := make([]byte, n)
		for _, mode := range benchModes {
			cfg := rotate.Config{Mode: mode}
			b.Run(fmt.Sprintf("n=%d/%s", n, mode), func(b *testing.B) {
				b.SetBytes(int64(n))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					rotate.Rotate(data, (i*7919)%(n+1), rotate.DirLeft, cfg)
				}
			})
		}
	}
}

func BenchmarkRotateWide(b *testing.B) {
	data := testutil.WideSequence(10000)
	for _, mode := range benchModes {
		cfg := rotate.Config{Mode: mode}
		b.Run(fmt.Sprintf("n=%d/%s", len(data), mode), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rotate.Rotate(data, (i*31)%len(data), rotate.DirLeft, cfg)
			}
		})
	}
}

func BenchmarkRotateSmallShift(b *testing.B) {
	data := make([]uint64, 100000)
	for _, mode := range benchModes {
		cfg := rotate.Config{Mode: mode}
		b.Run(fmt.Sprintf("n=%d/%s", len(data), mode), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rotate.Rotate(data, 3, rotate.DirRight, cfg)
			}
		})
	}
}
