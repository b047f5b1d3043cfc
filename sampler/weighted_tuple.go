// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math/big"

	safemath "github.com/niko-dunixi/weighted-probability/utils/math"
)

// WeightedTuple pairs a value with its relative frequency. The weight can be
// arbitrary, needless to say larger means more likely; only its magnitude
// relative to the other weights in the batch matters. A zero weight is
// allowed as long as the batch's total weight is positive.
type WeightedTuple[T any] struct {
	Weight uint64
	Value  T
}

// NewWeightedTuple returns a new WeightedTuple.
func NewWeightedTuple[T any](weight uint64, value T) WeightedTuple[T] {
	return WeightedTuple[T]{
		Weight: weight,
		Value:  value,
	}
}

type normalizedTuple[T any] struct {
	fractionalWeight *big.Rat
	value            T
}

// normalizeTuples rescales every weight by n/sum, mapping the average weight
// to exactly 1. The rescaled weights are exact rationals: classification
// against 1 and the rebalancing subtractions during table construction must
// not drift the way repeated floating point operations would.
func normalizeTuples[T any](tuples []WeightedTuple[T]) ([]normalizedTuple[T], error) {
	totalWeight := uint64(0)
	for _, tuple := range tuples {
		newWeight, err := safemath.Add64(totalWeight, tuple.Weight)
		if err != nil {
			return nil, err
		}
		totalWeight = newWeight
	}
	if totalWeight == 0 {
		return nil, ErrZeroTotalWeight
	}

	count := uint64(len(tuples))
	denominator := new(big.Int).SetUint64(totalWeight)
	normalized := make([]normalizedTuple[T], len(tuples))
	for i, tuple := range tuples {
		scaledWeight, err := safemath.Mul64(tuple.Weight, count)
		if err != nil {
			return nil, err
		}
		normalized[i] = normalizedTuple[T]{
			fractionalWeight: new(big.Rat).SetFrac(
				new(big.Int).SetUint64(scaledWeight),
				denominator,
			),
			value: tuple.Value,
		}
	}
	return normalized, nil
}
