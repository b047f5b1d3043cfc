// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/niko-dunixi/weighted-probability/sampler"
)

var _ sampler.Weighted[int] = (*Sampler[int])(nil)

// Sampler wraps a Weighted sampler, recording call latencies and error
// counts with prometheus.
type Sampler[T any] struct {
	metrics
	sampler.Weighted[T]
}

// New returns a metered view over [w], registering its metrics under
// [namespace].
func New[T any](
	namespace string,
	registerer prometheus.Registerer,
	w sampler.Weighted[T],
) (*Sampler[T], error) {
	meterSampler := &Sampler[T]{Weighted: w}
	return meterSampler, meterSampler.metrics.Initialize(namespace, registerer)
}

func (s *Sampler[T]) Initialize(tuples []sampler.WeightedTuple[T]) error {
	start := time.Now()
	err := s.Weighted.Initialize(tuples)
	end := time.Now()

	s.metrics.initialize.Observe(float64(end.Sub(start)))
	if err != nil {
		s.metrics.err.Inc()
	}
	return err
}

func (s *Sampler[T]) Sample() (T, error) {
	start := time.Now()
	value, err := s.Weighted.Sample()
	end := time.Now()

	s.metrics.sample.Observe(float64(end.Sub(start)))
	if err != nil {
		s.metrics.err.Inc()
	}
	return value, err
}
