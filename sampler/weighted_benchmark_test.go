// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "testing"

// WeightedBenchmark initializes [s] with [size] tuples of linearly
// increasing weight and times repeated sampling.
func WeightedBenchmark(b *testing.B, s Weighted[int], size int) {
	tuples := make([]WeightedTuple[int], size)
	for i := range tuples {
		tuples[i] = NewWeightedTuple(uint64(i+1), i)
	}
	if err := s.Initialize(tuples); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample()
	}
}

func BenchmarkVose1K(b *testing.B) {
	WeightedBenchmark(b, NewVose[int](), 1_000)
}

func BenchmarkVose100K(b *testing.B) {
	WeightedBenchmark(b, NewVose[int](), 100_000)
}

func BenchmarkLinear1K(b *testing.B) {
	WeightedBenchmark(b, NewLinear[int](), 1_000)
}

func BenchmarkLinear100K(b *testing.B) {
	WeightedBenchmark(b, NewLinear[int](), 100_000)
}

func BenchmarkVoseInitialize100K(b *testing.B) {
	tuples := make([]WeightedTuple[int], 100_000)
	for i := range tuples {
		tuples[i] = NewWeightedTuple(uint64(i+1), i)
	}
	s := NewVose[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Initialize(tuples); err != nil {
			b.Fatal(err)
		}
	}
}
