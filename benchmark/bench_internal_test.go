package benchmark_test

import (
	"testing"

	"github.com/dvander/go-opttable/internal/fuzzy"
	"github.com/dvander/go-opttable/internal/intern"
	"github.com/dvander/go-opttable/internal/pool"
)

// BenchmarkInternHit measures the read-lock fast path
func BenchmarkInternHit(b *testing.B) {
	si := intern.NewSpellingInterner(64)
	si.PreIntern([]string{"-o", "-I", "-D", "-Wl,"})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = si.Intern("-Wl,")
	}
}

// BenchmarkInternSuffix measures joined-value tail interning
func BenchmarkInternSuffix(b *testing.B) {
	si := intern.NewSpellingInterner(64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = si.InternSuffix("-Iinclude", 2)
	}
}

// BenchmarkFuzzySuggest measures one suggestion lookup over a realistic
// spelling set
func BenchmarkFuzzySuggest(b *testing.B) {
	spellings := []string{
		"-fsyntax-only", "-fvectorize", "-funroll-loops", "-fno-inline",
		"-o", "-v", "-c", "-g", "--version", "--verbose", "-Wl,", "-Xarch_",
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fuzzy.FindBestSpelling("-fsyntax-onyl", spellings, 2)
	}
}

// BenchmarkStringSlicePool measures arena checkout/checkin
func BenchmarkStringSlicePool(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		arena := pool.GetStringSlice()
		*arena = append(*arena, "out.bin", "include", "NDEBUG")
		pool.PutStringSlice(arena)
	}
}
