// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// results recorded by the apply counter
const (
	resultApplied  = "applied"
	resultInvalid  = "invalid"
	resultInternal = "internal"
	resultRejected = "rejected"
	unknownFamily  = "unknown"
)

var (
	metricsOnce  sync.Once
	applyCounter *prometheus.CounterVec
)

// ApplyCounter - transact_apply_total{family, result}
func ApplyCounter() *prometheus.CounterVec {
	metricsOnce.Do(func() {
		applyCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transact_apply_total",
			Help: "Count of executed transactions by family and result.",
		}, []string{"family", "result"})
		prometheus.MustRegister(applyCounter)
	})
	return applyCounter
}

func observe(family string, result string) {
	if "" == family {
		family = unknownFamily
	}
	ApplyCounter().WithLabelValues(family, result).Inc()
}
