package store

import (
	"math/rand"
	"testing"
)

func BenchmarkSort1k(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	keys := make([]int32, 1024)
	for i := range keys {
		keys[i] = rng.Int31()
	}
	src := pack(keys...)
	work := make([]byte, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_ = Sort(work, recSize, cmpKeys)
	}
}

func BenchmarkSearch1k(b *testing.B) {
	keys := make([]int32, 1024)
	for i := range keys {
		keys[i] = int32(i * 2)
	}
	base := pack(keys...)
	item := mkRec(1001, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Search(base, recSize, cmpKeys, item)
	}
}
