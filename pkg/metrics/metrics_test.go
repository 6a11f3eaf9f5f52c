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

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsEnabled(t *testing.T) {
	// Metrics should be enabled by default
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled by default")
	}

	Disable()
	if IsEnabled() {
		t.Error("Expected metrics to be disabled after Disable()")
	}

	Enable()
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled after Enable()")
	}
}

func TestRecordOperation(t *testing.T) {
	Enable()

	OperationsTotal.Reset()
	OperationDuration.Reset()

	// Record a successful operation
	RecordOperation(OpGenerate, time.Now(), nil)

	count := testutil.CollectAndCount(OperationsTotal)
	if count != 1 {
		t.Errorf("Expected 1 operation series, got %d", count)
	}

	histCount := testutil.CollectAndCount(OperationDuration)
	if histCount != 1 {
		t.Errorf("Expected 1 histogram series, got %d", histCount)
	}

	// Record an error operation
	RecordOperation(OpUnwrap, time.Now(), errors.New("decryption failed"))

	count = testutil.CollectAndCount(OperationsTotal)
	if count != 2 {
		t.Errorf("Expected 2 operation series, got %d", count)
	}

	errored := testutil.ToFloat64(OperationsTotal.WithLabelValues(OpUnwrap, StatusError))
	if errored != 1 {
		t.Errorf("Expected 1 error recorded, got %v", errored)
	}
}

func TestRecordOperationDisabled(t *testing.T) {
	OperationsTotal.Reset()

	Disable()
	defer Enable()

	RecordOperation(OpWrap, time.Now(), nil)
	RecordCount(OpGet)

	if count := testutil.CollectAndCount(OperationsTotal); count != 0 {
		t.Errorf("Expected no series while disabled, got %d", count)
	}
}

func TestGaugesAndCountersHonorDisable(t *testing.T) {
	Enable()
	ObjectsStored.Set(0)

	RecordObjectAdded()
	RecordObjectAdded()
	RecordObjectRemoved()
	if got := testutil.ToFloat64(ObjectsStored); got != 1 {
		t.Errorf("Expected 1 object stored, got %v", got)
	}

	wrapBytes := testutil.ToFloat64(WrapBytesTotal)
	RecordWrapBytes(64)
	if got := testutil.ToFloat64(WrapBytesTotal); got != wrapBytes+64 {
		t.Errorf("Expected wrap bytes %v, got %v", wrapBytes+64, got)
	}

	Disable()
	defer Enable()

	RecordObjectAdded()
	RecordObjectRemoved()
	RecordWrapBytes(128)

	if got := testutil.ToFloat64(ObjectsStored); got != 1 {
		t.Errorf("Expected gauge unchanged while disabled, got %v", got)
	}
	if got := testutil.ToFloat64(WrapBytesTotal); got != wrapBytes+64 {
		t.Errorf("Expected wrap bytes unchanged while disabled, got %v", got)
	}
}

func TestRecordCount(t *testing.T) {
	Enable()
	OperationsTotal.Reset()

	RecordCount(OpGet)
	RecordCount(OpGet)

	got := testutil.ToFloat64(OperationsTotal.WithLabelValues(OpGet, StatusSuccess))
	if got != 2 {
		t.Errorf("Expected 2 gets recorded, got %v", got)
	}
}
