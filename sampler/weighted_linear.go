// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/niko-dunixi/weighted-probability/utils"
	safemath "github.com/niko-dunixi/weighted-probability/utils/math"
)

var (
	_ Weighted[int]                              = (*weightedLinear[int])(nil)
	_ utils.Sortable[weightedLinearElement[int]] = weightedLinearElement[int]{}
)

type weightedLinearElement[T any] struct {
	cumulativeWeight uint64
	value            T
}

// Note that this sorts in order of decreasing cumulative weight.
func (e weightedLinearElement[T]) Less(other weightedLinearElement[T]) bool {
	return e.cumulativeWeight > other.cumulativeWeight
}

// weightedLinear implements the Weighted interface by executing a linear
// search over the elements in the order of their probabilistic occurrence.
//
// Initialization takes O(n * log(n)) time. Sampling can take up to O(n)
// time; as the distribution becomes more biased, sampling becomes faster in
// expectation. It exists as a correctness cross-check and benchmark baseline
// for the Vose sampler, which stays O(1) regardless of bias.
type weightedLinear[T any] struct {
	rng       *rng
	seededRNG *rng

	arr []weightedLinearElement[T]
}

// NewLinear returns a Weighted sampler backed by a sorted cumulative-weight
// scan.
func NewLinear[T any]() Weighted[T] {
	return &weightedLinear[T]{
		rng:       globalRNG,
		seededRNG: newRNG(),
	}
}

// NewDeterministicLinear returns a linear sampler that draws from the
// provided source.
func NewDeterministicLinear[T any](source Source) Weighted[T] {
	r := newDeterministicRNG(source)
	return &weightedLinear[T]{
		rng:       r,
		seededRNG: r,
	}
}

func (s *weightedLinear[T]) Initialize(tuples []WeightedTuple[T]) error {
	if len(tuples) == 0 {
		return ErrNoWeightedTuples
	}

	numTuples := len(tuples)
	if numTuples <= cap(s.arr) {
		s.arr = s.arr[:numTuples]
	} else {
		s.arr = make([]weightedLinearElement[T], numTuples)
	}

	for i, tuple := range tuples {
		s.arr[i] = weightedLinearElement[T]{
			cumulativeWeight: tuple.Weight,
			value:            tuple.Value,
		}
	}

	// Optimize so that the most probable values are at the front of the
	// array.
	utils.Sort(s.arr)

	for i := 1; i < len(s.arr); i++ {
		newWeight, err := safemath.Add64(
			s.arr[i-1].cumulativeWeight,
			s.arr[i].cumulativeWeight,
		)
		if err != nil {
			s.arr = s.arr[:0]
			return err
		}
		s.arr[i].cumulativeWeight = newWeight
	}

	if s.arr[len(s.arr)-1].cumulativeWeight == 0 {
		s.arr = s.arr[:0]
		return ErrZeroTotalWeight
	}
	return nil
}

func (s *weightedLinear[T]) Sample() (T, error) {
	if len(s.arr) == 0 {
		var zero T
		return zero, errNotInitialized
	}

	totalWeight := s.arr[len(s.arr)-1].cumulativeWeight
	value := s.rng.Uint64Inclusive(totalWeight - 1)

	index := 0
	for {
		if elem := s.arr[index]; value < elem.cumulativeWeight {
			return elem.value, nil
		}
		index++
	}
}

func (s *weightedLinear[T]) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *weightedLinear[T]) ClearSeed() {
	s.rng = globalRNG
}
