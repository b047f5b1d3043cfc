// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd64(t *testing.T) {
	tests := []struct {
		a        uint64
		b        uint64
		expected uint64
		err      error
	}{
		{0, 0, 0, nil},
		{1, 2, 3, nil},
		{math.MaxUint64, 0, math.MaxUint64, nil},
		{math.MaxUint64 - 1, 1, math.MaxUint64, nil},
		{math.MaxUint64, 1, 0, ErrOverflow},
		{1 << 63, 1 << 63, 0, ErrOverflow},
	}
	for _, test := range tests {
		sum, err := Add64(test.a, test.b)
		require.ErrorIs(t, err, test.err)
		require.Equal(t, test.expected, sum)
	}
}

func TestMul64(t *testing.T) {
	tests := []struct {
		a        uint64
		b        uint64
		expected uint64
		err      error
	}{
		{0, 0, 0, nil},
		{0, math.MaxUint64, 0, nil},
		{math.MaxUint64, 0, 0, nil},
		{3, 5, 15, nil},
		{math.MaxUint64, 1, math.MaxUint64, nil},
		{math.MaxUint64, 2, 0, ErrOverflow},
		{1 << 32, 1 << 32, 0, ErrOverflow},
	}
	for _, test := range tests {
		product, err := Mul64(test.a, test.b)
		require.ErrorIs(t, err, test.err)
		require.Equal(t, test.expected, product)
	}
}
