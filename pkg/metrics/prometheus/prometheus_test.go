package prometheus

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/marmos91/dataview/pkg/manifest"
	"github.com/marmos91/dataview/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enableMetrics(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)
}

func TestConstructorsDisabled(t *testing.T) {
	metrics.Disable()

	assert.Nil(t, NewCodecMetrics())
	assert.Nil(t, NewStoreMetrics())
	assert.Nil(t, metrics.NewCodecMetrics())
	assert.Nil(t, metrics.NewStoreMetrics())

	// nil receivers are no-ops
	var c *codecMetrics
	assert.NotPanics(t, func() {
		c.ObserveDecode(manifest.Version2, 10, time.Millisecond, nil)
		c.ObserveEncode(manifest.Version2, 10, time.Millisecond, nil)
	})
	var s *storeMetrics
	assert.NotPanics(t, func() {
		s.ObserveOperation("get", time.Millisecond, nil)
		s.RecordCacheStats("block", 1, 1, 0.5)
	})
}

func TestRegisteredConstructors(t *testing.T) {
	enableMetrics(t)

	assert.NotNil(t, metrics.NewCodecMetrics())
	assert.NotNil(t, metrics.NewStoreMetrics())
}

func TestCodecMetrics(t *testing.T) {
	enableMetrics(t)
	m := NewCodecMetrics()
	require.NotNil(t, m)

	m.ObserveDecode(manifest.Version2, 128, 2*time.Millisecond, nil)
	m.ObserveDecode(manifest.Version2, 128, time.Millisecond, errors.New("truncated"))
	m.ObserveDecode(0, 3, time.Microsecond, errors.New("short header"))
	m.ObserveEncode(manifest.Version1, 23, time.Microsecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("v2", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("v2", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("unknown", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.encodeTotal.WithLabelValues("v1", "success")))

	// sizes are only observed for successful operations
	assert.Equal(t, 1, testutil.CollectAndCount(m.decodeBytes))
	assert.Equal(t, 2, testutil.CollectAndCount(m.decodeDuration))

	expected := `
# HELP dataview_manifest_encode_total Total number of manifest encodes by format version and status
# TYPE dataview_manifest_encode_total counter
dataview_manifest_encode_total{status="success",version="v1"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.GetRegistry(), strings.NewReader(expected), "dataview_manifest_encode_total"))
}

func TestStoreMetrics(t *testing.T) {
	enableMetrics(t)
	m := NewStoreMetrics()
	require.NotNil(t, m)

	m.ObserveOperation("put", time.Millisecond, nil)
	m.ObserveOperation("get", time.Millisecond, errors.New("not found"))
	m.RecordCacheStats("block", 30, 10, 0.75)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("put", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("get", "error")))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("block")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("block")))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("block")))
}

func TestConstructorsShareCollectors(t *testing.T) {
	enableMetrics(t)

	var first, second *codecMetrics
	require.NotPanics(t, func() {
		first = NewCodecMetrics()
		second = NewCodecMetrics()
	})
	first.ObserveEncode(manifest.Version2, 10, time.Millisecond, nil)
	second.ObserveEncode(manifest.Version2, 10, time.Millisecond, nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(first.encodeTotal.WithLabelValues("v2", "success")))

	var a, b *storeMetrics
	require.NotPanics(t, func() {
		a = NewStoreMetrics()
		b = NewStoreMetrics()
	})
	a.ObserveOperation("get", time.Millisecond, nil)
	b.ObserveOperation("get", time.Millisecond, nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(b.operationsTotal.WithLabelValues("get", "success")))
}
