package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

// registerOrReuse registers c with reg. If an equal collector is already
// registered, the existing one is returned so that every constructor call
// against the same registry records into the same series. Panics on any
// other registration failure.
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// factory mirrors promauto.Factory on top of registerOrReuse.
type factory struct {
	reg prometheus.Registerer
}

func with(reg prometheus.Registerer) factory {
	return factory{reg: reg}
}

func (f factory) NewCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	return registerOrReuse(f.reg, prometheus.NewCounterVec(opts, labels))
}

func (f factory) NewHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	return registerOrReuse(f.reg, prometheus.NewHistogramVec(opts, labels))
}

func (f factory) NewGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	return registerOrReuse(f.reg, prometheus.NewGaugeVec(opts, labels))
}
