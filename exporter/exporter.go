/*
Copyright (c) the kerncall authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package exporter publishes kernel clock discipline state as prometheus
metrics: per-clock offset, frequency, error bounds, status bits and clock
state, as reported by CLOCK_ADJTIME reads.
*/
package exporter

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/kerncall/kerncall/clock"
)

// Exporter holds the exporter details
type Exporter struct {
	registry *prometheus.Registry
	cfg      *Config
	clocks   []clock.ClockID

	offset    *prometheus.GaugeVec
	freqPPB   *prometheus.GaugeVec
	maxError  *prometheus.GaugeVec
	estError  *prometheus.GaugeVec
	state     *prometheus.GaugeVec
	status    *prometheus.GaugeVec
	taiOffset *prometheus.GaugeVec
	timeSec   *prometheus.GaugeVec
	readError *prometheus.CounterVec
}

// New creates a new Exporter and registers its collectors
func New(cfg *Config) (*Exporter, error) {
	clocks, err := cfg.ClockIDs()
	if err != nil {
		return nil, err
	}
	labels := []string{"clock"}
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		cfg:      cfg,
		clocks:   clocks,
		offset: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_offset",
			Help: "Time offset reported by clock_adjtime; nanoseconds under STA_NANO, otherwise microseconds",
		}, labels),
		freqPPB: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_frequency_ppb",
			Help: "Frequency offset in parts per billion",
		}, labels),
		maxError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_max_error_us",
			Help: "Maximum error in microseconds",
		}, labels),
		estError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_est_error_us",
			Help: "Estimated error in microseconds",
		}, labels),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_state",
			Help: "Clock state returned by clock_adjtime (0 is TIME_OK, 5 is TIME_ERROR)",
		}, labels),
		status: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_status",
			Help: "Raw STA_* status bitmask",
		}, labels),
		taiOffset: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_tai_offset_sec",
			Help: "TAI-UTC offset in seconds",
		}, labels),
		timeSec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kernclock_time_sec",
			Help: "Clock reading at poll time, whole seconds",
		}, labels),
		readError: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kernclock_read_errors_total",
			Help: "Failed clock_adjtime/clock_gettime polls",
		}, labels),
	}
	for _, c := range []prometheus.Collector{
		e.offset, e.freqPPB, e.maxError, e.estError, e.state,
		e.status, e.taiOffset, e.timeSec, e.readError,
	} {
		if err := e.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Exporter) collect() {
	for _, c := range e.clocks {
		name := c.String()
		tx := &clock.Timex{}
		state, err := clock.Adjtime(c, tx)
		if err != nil {
			log.Errorf("reading clock %s discipline state: %v", name, err)
			e.readError.WithLabelValues(name).Inc()
			continue
		}
		e.offset.WithLabelValues(name).Set(float64(tx.Offset))
		e.freqPPB.WithLabelValues(name).Set(float64(tx.Freq) / clock.PPBToTimexPPM)
		e.maxError.WithLabelValues(name).Set(float64(tx.Maxerror))
		e.estError.WithLabelValues(name).Set(float64(tx.Esterror))
		e.state.WithLabelValues(name).Set(float64(state))
		e.status.WithLabelValues(name).Set(float64(tx.Status.Raw()))
		e.taiOffset.WithLabelValues(name).Set(float64(tx.Tai))

		ts, err := clock.Gettime(c)
		if err != nil {
			log.Errorf("reading clock %s: %v", name, err)
			e.readError.WithLabelValues(name).Inc()
			continue
		}
		e.timeSec.WithLabelValues(name).Set(float64(ts.Sec))
	}
}

// Start polls the clocks on the configured interval and serves /metrics.
// It blocks forever.
func (e *Exporter) Start() {
	go func() {
		for {
			e.collect()
			time.Sleep(e.cfg.Interval)
		}
	}()

	http.Handle("/metrics", promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	))

	log.Infof("listening on %s", e.cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(e.cfg.ListenAddr, nil))
}
