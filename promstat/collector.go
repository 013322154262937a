// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promstat

import (
	"code.hybscloud.com/ringfmt"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything that reports gateway counters.
// *ringfmt.Gateway satisfies it.
type StatsSource interface {
	Stats() ringfmt.Stats
}

// Collector is a prometheus.Collector over one StatsSource.
type Collector struct {
	src StatsSource

	busy         *prometheus.Desc
	formatErrors *prometheus.Desc
	dropped      *prometheus.Desc
	flushes      *prometheus.Desc
	sinkErrors   *prometheus.Desc
}

// NewCollector returns a collector for src. Metric names are
// <namespace>_ringfmt_<name>; an empty namespace drops the prefix.
func NewCollector(namespace string, src StatsSource) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "ringfmt", name), help, nil, nil)
	}
	return &Collector{
		src:          src,
		busy:         desc("busy_total", "Non-blocking calls rejected because the buffer lock was held"),
		formatErrors: desc("format_errors_total", "Calls aborted by a malformed format directive"),
		dropped:      desc("dropped_bytes_total", "Bytes discarded because the ring buffer was full"),
		flushes:      desc("flushes_total", "Ring buffer flushes that carried content"),
		sinkErrors:   desc("sink_errors_total", "Failed writes to the log sink"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.busy
	ch <- c.formatErrors
	ch <- c.dropped
	ch <- c.flushes
	ch <- c.sinkErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.busy, prometheus.CounterValue, float64(s.Busy))
	ch <- prometheus.MustNewConstMetric(c.formatErrors, prometheus.CounterValue, float64(s.FormatErrors))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped))
	ch <- prometheus.MustNewConstMetric(c.flushes, prometheus.CounterValue, float64(s.Flushes))
	ch <- prometheus.MustNewConstMetric(c.sinkErrors, prometheus.CounterValue, float64(s.SinkErrors))
}
