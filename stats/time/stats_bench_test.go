package time

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-elec/internal/testutil"
)

func BenchmarkAnalyze(b *testing.B) {
	sizes := []int{1, 10, 100}
	for _, n := range sizes {
		signal := testutil.DeterministicNoise(1, 1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Analyze(signal)
			}
		})
	}
}
