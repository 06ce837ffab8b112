package bst

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/bradfitz/iter"
)

func benchmarkInsertSearch(b *testing.B, keys []string) {
	b.ReportAllocs()
	b.ResetTimer()
	for range iter.N(b.N) {
		var tr Tree[string, int]
		for i, k := range keys {
			tr.Insert(k, i)
		}
		for _, k := range keys {
			if !tr.Search(k).Ok {
				b.FailNow()
			}
		}
	}
}

func BenchmarkInsertSearch(b *testing.B) {
	const n = 2000
	sorted := make([]string, 0, n)
	for i := range iter.N(n) {
		sorted = append(sorted, fmt.Sprintf("%06d", i))
	}
	shuffled := append([]string(nil), sorted...)
	rand.New(rand.NewPCG(0, 0)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	b.Run("Shuffled", func(b *testing.B) {
		benchmarkInsertSearch(b, shuffled)
	})
	b.Run("Sorted", func(b *testing.B) {
		benchmarkInsertSearch(b, sorted)
	})
}
