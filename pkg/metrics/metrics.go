// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-mockhsm.
//
// go-mockhsm is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for mock HSM object
// store operations: operation/error counters, latency histograms, and an
// object-count gauge. Test suites that exercise many simulated devices can
// scrape a single registry since collectors are registered process-wide.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all mock HSM metrics
	Namespace = "mockhsm"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpGenerate = "generate"
	OpPut      = "put"
	OpGet      = "get"
	OpRemove   = "remove"
	OpWrap     = "wrap"
	OpUnwrap   = "unwrap"
)

var (
	// OperationsTotal tracks the total number of object store operations
	// by operation and status. Use RecordOperation to increment it.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of object store operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// OperationDuration tracks the duration of object store operations in
	// seconds. Buckets are optimized for in-memory operation latencies.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of object store operations in seconds",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01, .1, 1},
		},
		[]string{LabelOperation},
	)

	// ObjectsStored tracks the number of objects currently resident across
	// all store instances in the process.
	ObjectsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "objects_stored",
			Help:      "Number of objects currently stored across all simulated devices",
		},
	)

	// WrapBytesTotal tracks the total ciphertext bytes produced by wrap
	// operations.
	WrapBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "wrap_bytes_total",
			Help:      "Total ciphertext bytes produced by wrap operations",
		},
	)
)

// enabled gates metric recording. Metrics are on by default; tests that
// exercise large numbers of simulated devices can turn them off.
var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// Enable turns metric recording on.
func Enable() {
	enabled.Store(true)
}

// Disable turns metric recording off. Collectors stay registered; they
// simply stop advancing.
func Disable() {
	enabled.Store(false)
}

// IsEnabled reports whether metric recording is on.
func IsEnabled() bool {
	return enabled.Load()
}

// RecordOperation increments OperationsTotal for the given operation with
// a success or error status, and observes the elapsed duration.
func RecordOperation(operation string, start time.Time, err error) {
	if !IsEnabled() {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordCount increments OperationsTotal for an operation that cannot
// fail, without a duration observation.
func RecordCount(operation string) {
	if !IsEnabled() {
		return
	}
	OperationsTotal.WithLabelValues(operation, StatusSuccess).Inc()
}

// RecordObjectAdded increments the stored-object gauge.
func RecordObjectAdded() {
	if !IsEnabled() {
		return
	}
	ObjectsStored.Inc()
}

// RecordObjectRemoved decrements the stored-object gauge.
func RecordObjectRemoved() {
	if !IsEnabled() {
		return
	}
	ObjectsStored.Dec()
}

// RecordWrapBytes adds n ciphertext bytes to the wrap-output counter.
func RecordWrapBytes(n int) {
	if !IsEnabled() {
		return
	}
	WrapBytesTotal.Add(float64(n))
}
