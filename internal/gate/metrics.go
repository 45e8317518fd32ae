// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gateway metrics
var (
	mExecuteOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetgate",
		Subsystem: "gate",
		Name:      "execute_ops_total",
		Help:      "Number of successful mutating operations",
	}, []string{"method"})
	mQueryOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetgate",
		Subsystem: "gate",
		Name:      "query_ops_total",
		Help:      "Number of query operations",
	}, []string{"query"})
	mQueryPages = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "assetgate",
		Subsystem: "gate",
		Name:      "query_pages",
		Help:      "Number of pages fetched per aggregated query",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)
