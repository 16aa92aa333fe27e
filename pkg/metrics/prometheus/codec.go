package prometheus

import (
	"time"

	"github.com/marmos91/dataview/pkg/manifest"
	"github.com/marmos91/dataview/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	metrics.RegisterCodecMetricsConstructor(func() manifest.Metrics {
		if m := NewCodecMetrics(); m != nil {
			return m
		}
		return nil
	})
}

// codecMetrics is the Prometheus implementation of manifest.Metrics.
type codecMetrics struct {
	decodeTotal    *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
	decodeBytes    *prometheus.HistogramVec
	encodeTotal    *prometheus.CounterVec
	encodeDuration *prometheus.HistogramVec
	encodeBytes    *prometheus.HistogramVec
}

var (
	durationBuckets = []float64{
		0.01, // 10µs - tiny manifests
		0.05,
		0.1,
		0.5,
		1,   // 1ms
		5,   // 5ms - thousands of modules
		25,  // 25ms
		100, // 100ms - near the size limit
	}

	sizeBuckets = []float64{
		64,       // header plus a couple of modules
		512,      // 512B
		4096,     // 4KB
		65536,    // 64KB
		1048576,  // 1MB
		16777216, // 16MB - default store limit
		67108864, // 64MB - codec block limit
	}
)

// NewCodecMetrics creates a new Prometheus-backed manifest.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called). Repeated
// calls against the same registry return instances sharing one set of series.
func NewCodecMetrics() *codecMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := with(metrics.GetRegistry())

	return &codecMetrics{
		decodeTotal: reg.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataview_manifest_decode_total",
				Help: "Total number of manifest decodes by format version and status",
			},
			[]string{"version", "status"},
		),
		decodeDuration: reg.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataview_manifest_decode_duration_milliseconds",
				Help:    "Duration of manifest decodes in milliseconds",
				Buckets: durationBuckets,
			},
			[]string{"version"},
		),
		decodeBytes: reg.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataview_manifest_decode_bytes",
				Help:    "Distribution of decoded manifest sizes in bytes",
				Buckets: sizeBuckets,
			},
			[]string{"version"},
		),
		encodeTotal: reg.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataview_manifest_encode_total",
				Help: "Total number of manifest encodes by format version and status",
			},
			[]string{"version", "status"},
		),
		encodeDuration: reg.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataview_manifest_encode_duration_milliseconds",
				Help:    "Duration of manifest encodes in milliseconds",
				Buckets: durationBuckets,
			},
			[]string{"version"},
		),
		encodeBytes: reg.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataview_manifest_encode_bytes",
				Help:    "Distribution of encoded manifest sizes in bytes",
				Buckets: sizeBuckets,
			},
			[]string{"version"},
		),
	}
}

// versionLabel maps a format version to its label; failures before the
// header is read report "unknown".
func versionLabel(v manifest.Version) string {
	if !v.Supported() {
		return "unknown"
	}
	return v.String()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *codecMetrics) ObserveDecode(version manifest.Version, size int, duration time.Duration, err error) {
	if m == nil {
		return
	}

	v := versionLabel(version)
	m.decodeTotal.WithLabelValues(v, statusLabel(err)).Inc()
	m.decodeDuration.WithLabelValues(v).Observe(duration.Seconds() * 1000)
	if err == nil {
		m.decodeBytes.WithLabelValues(v).Observe(float64(size))
	}
}

func (m *codecMetrics) ObserveEncode(version manifest.Version, size int, duration time.Duration, err error) {
	if m == nil {
		return
	}

	v := versionLabel(version)
	m.encodeTotal.WithLabelValues(v, statusLabel(err)).Inc()
	m.encodeDuration.WithLabelValues(v).Observe(duration.Seconds() * 1000)
	if err == nil {
		m.encodeBytes.WithLabelValues(v).Observe(float64(size))
	}
}
