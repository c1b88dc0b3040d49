// SPDX-License-Identifier: MIT

package hirschberg_test

import (
	"testing"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
	"github.com/katalvlaran/lvlalign/seqgen"
)

// benchmarkAlign runs Align on a related pair of length n under opts.
func benchmarkAlign(b *testing.B, n int, opts hirschberg.Options) {
	a, c, err := seqgen.Related(n, seqgen.WithSeed(int64(n)))
	if err != nil {
		b.Fatalf("seqgen.Related failed: %v", err)
	}
	p := core.DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hirschberg.Align(a, c, p, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Recursive500 benchmarks recursion on 500-symbol inputs.
func BenchmarkAlign_Recursive500(b *testing.B) {
	benchmarkAlign(b, 500, hirschberg.Options{Strategy: hirschberg.Recursive})
}

// BenchmarkAlign_Stack500 benchmarks the explicit stack on 500-symbol inputs.
func BenchmarkAlign_Stack500(b *testing.B) {
	benchmarkAlign(b, 500, hirschberg.Options{Strategy: hirschberg.WorkStack})
}

// BenchmarkAlign_Recursive2000 benchmarks recursion on 2000-symbol inputs.
func BenchmarkAlign_Recursive2000(b *testing.B) {
	benchmarkAlign(b, 2000, hirschberg.DefaultOptions())
}
