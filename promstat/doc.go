// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package promstat exports [ringfmt.Gateway] counters as Prometheus metrics.
//
//	g := ringfmt.New(1024).Sink(ringfmt.NewFDSink(2)).Build()
//	prometheus.MustRegister(promstat.NewCollector("kernel", g))
//
// The collector reads [ringfmt.Gateway.Stats] at scrape time. Stats never
// takes the gateway lock, so scrapes cannot stall formatted writes.
package promstat
