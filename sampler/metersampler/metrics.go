// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/niko-dunixi/weighted-probability/utils/metric"
	"github.com/niko-dunixi/weighted-probability/utils/wrappers"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	initialize,
	sample prometheus.Histogram

	err prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.initialize = metric.NewNanosecondsLatencyMetric(namespace, "initialize")
	m.sample = metric.NewNanosecondsLatencyMetric(namespace, "sample")
	m.err = newCounterMetric(namespace, "err")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.initialize),
		registerer.Register(m.sample),
		registerer.Register(m.err),
	)
	return errs.Err
}
