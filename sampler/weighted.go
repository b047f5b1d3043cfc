// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	// ErrNoWeightedTuples is returned by Initialize when no tuples are
	// provided.
	ErrNoWeightedTuples = errors.New("no weighted tuples were provided")

	// ErrZeroTotalWeight is returned by Initialize when tuples are provided
	// but every one of them carries a zero weight, which leaves nothing to
	// normalize against.
	ErrZeroTotalWeight = errors.New("total weight must be greater than zero")

	errNotInitialized = errors.New("sampler was not initialized")
)

// Weighted defines how to sample a value based on a provided weighted
// distribution.
type Weighted[T any] interface {
	// Initialize builds the sampler's internal tables from the provided
	// tuples. Any previously initialized distribution is discarded.
	Initialize(tuples []WeightedTuple[T]) error

	// Sample returns one value, chosen with probability proportional to its
	// weight. It only errors when called before a successful Initialize.
	Sample() (T, error)

	// Seed makes the sampler's draws deterministic until ClearSeed is
	// called.
	Seed(int64)
	ClearSeed()
}

// NewWeighted returns a new sampler. Sampling is performed in O(1) time.
func NewWeighted[T any]() Weighted[T] {
	return NewVose[T]()
}
