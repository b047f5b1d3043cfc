// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math/big"

var (
	_ Weighted[int] = (*weightedVose[int])(nil)

	one = big.NewRat(1, 1)
)

// weightedVose implements the Weighted interface with Vose's alias method.
//
// Initialization takes O(n) time and builds two parallel tables: a
// probability threshold for every slot and, for each slot that was paired
// during construction, the alias value the slot falls through to.
//
// Sampling is performed in O(1) time: one fair die roll over the slots and
// one biased coin flip against the chosen slot's threshold.
//
// ref: https://www.keithschwarz.com/darts-dice-coins/
type weightedVose[T any] struct {
	rng       *rng
	seededRNG *rng

	slots   []voseSlot[T]
	aliases []T
}

type voseSlot[T any] struct {
	// threshold is in (0, 1] for any slot holding a positive-weight value,
	// and exactly 0 for a slot holding a zero-weight value.
	threshold *big.Rat
	value     T
}

// NewVose returns a Weighted sampler backed by Vose's alias method.
func NewVose[T any]() Weighted[T] {
	return &weightedVose[T]{
		rng:       globalRNG,
		seededRNG: newRNG(),
	}
}

// NewDeterministicVose returns a Vose sampler that draws from the provided
// source.
func NewDeterministicVose[T any](source Source) Weighted[T] {
	r := newDeterministicRNG(source)
	return &weightedVose[T]{
		rng:       r,
		seededRNG: r,
	}
}

func (s *weightedVose[T]) Initialize(tuples []WeightedTuple[T]) error {
	if len(tuples) == 0 {
		return ErrNoWeightedTuples
	}
	normalized, err := normalizeTuples(tuples)
	if err != nil {
		return err
	}

	numTuples := len(normalized)
	if numTuples <= cap(s.slots) {
		s.slots = s.slots[:0]
	} else {
		s.slots = make([]voseSlot[T], 0, numTuples)
	}
	if numTuples <= cap(s.aliases) {
		s.aliases = s.aliases[:0]
	} else {
		s.aliases = make([]T, 0, numTuples)
	}

	// Partition into worklists around the average weight, which
	// normalization mapped to exactly 1.
	small := make([]normalizedTuple[T], 0, numTuples)
	large := make([]normalizedTuple[T], 0, numTuples)
	for _, tuple := range normalized {
		if tuple.fractionalWeight.Cmp(one) < 0 {
			small = append(small, tuple)
		} else {
			large = append(large, tuple)
		}
	}

	// Every small item fills part of one slot and borrows the remainder of
	// the slot's mass from a large item, recorded as the slot's alias. The
	// large item gives up the mass it donated and is re-classified.
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		s.slots = append(s.slots, voseSlot[T]{
			threshold: l.fractionalWeight,
			value:     l.value,
		})
		s.aliases = append(s.aliases, g.value)

		g.fractionalWeight = new(big.Rat).Sub(
			new(big.Rat).Add(g.fractionalWeight, l.fractionalWeight),
			one,
		)
		if g.fractionalWeight.Cmp(one) < 0 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	// Each remaining item holds exactly one slot of mass. With exact
	// arithmetic only large can be non-empty here; draining small as well
	// guards the slot-count invariant regardless.
	for i := len(large) - 1; i >= 0; i-- {
		s.slots = append(s.slots, voseSlot[T]{
			threshold: one,
			value:     large[i].value,
		})
	}
	for i := len(small) - 1; i >= 0; i-- {
		s.slots = append(s.slots, voseSlot[T]{
			threshold: one,
			value:     small[i].value,
		})
	}

	return nil
}

func (s *weightedVose[T]) Sample() (T, error) {
	numSlots := uint64(len(s.slots))
	if numSlots == 0 {
		var zero T
		return zero, errNotInitialized
	}

	// A fair die roll picks the slot, then an independent coin flip against
	// the slot's threshold decides between the slot's own value and its
	// alias. Slots emitted by the drain loops have threshold 1, which the
	// coin flip in [0, 1) can never exceed, so their missing alias entries
	// are never read.
	index := s.rng.Uint64Inclusive(numSlots - 1)
	slot := s.slots[index]
	if coin := s.rng.Fraction(); coin.Cmp(slot.threshold) <= 0 {
		return slot.value, nil
	}
	return s.aliases[index], nil
}

func (s *weightedVose[T]) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *weightedVose[T]) ClearSeed() {
	s.rng = globalRNG
}
