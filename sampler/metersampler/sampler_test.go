// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/niko-dunixi/weighted-probability/sampler"
)

func TestMeterSampler(t *testing.T) {
	require := require.New(t)

	s, err := New("test", prometheus.NewRegistry(), sampler.NewVose[string]())
	require.NoError(err)

	require.ErrorIs(s.Initialize(nil), sampler.ErrNoWeightedTuples)
	require.Equal(float64(1), testutil.ToFloat64(s.metrics.err))

	require.NoError(s.Initialize([]sampler.WeightedTuple[string]{
		sampler.NewWeightedTuple(1, "heads"),
	}))

	value, err := s.Sample()
	require.NoError(err)
	require.Equal("heads", value)

	// The failed Initialize is the only error counted so far.
	require.Equal(float64(1), testutil.ToFloat64(s.metrics.err))
}

func TestMeterSamplerSeeding(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	first, err := New("first", registry, sampler.NewVose[int]())
	require.NoError(err)
	second, err := New("second", registry, sampler.NewVose[int]())
	require.NoError(err)

	tuples := []sampler.WeightedTuple[int]{
		sampler.NewWeightedTuple(1, 0),
		sampler.NewWeightedTuple(2, 1),
		sampler.NewWeightedTuple(3, 2),
	}
	require.NoError(first.Initialize(tuples))
	require.NoError(second.Initialize(tuples))

	// Seed and ClearSeed pass through to the wrapped sampler.
	first.Seed(9)
	second.Seed(9)
	for i := 0; i < 100; i++ {
		firstValue, err := first.Sample()
		require.NoError(err)
		secondValue, err := second.Sample()
		require.NoError(err)
		require.Equal(firstValue, secondValue)
	}
}

func TestMeterSamplerDuplicateNamespace(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New("test", registry, sampler.NewVose[int]())
	require.NoError(err)

	_, err = New("test", registry, sampler.NewVose[int]())
	require.Error(err)
}
