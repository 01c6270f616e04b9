package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kbushick/infrastructure/functions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// result label values of the fits
const (
	OK              = "ok"
	LengthMismatch  = "length-mismatch"
	InvalidArgument = "invalid-argument"
	SingularFit     = "singular-fit"
	Failed          = "error"
)

// Metrics tracks the outcome of line fits on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates a new Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Result maps the outcome of a fit to its label value.
func Result(err error) string {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, functions.ErrLengthMismatch):
		return LengthMismatch
	case errors.Is(err, functions.ErrInvalidArgument):
		return InvalidArgument
	case errors.Is(err, functions.ErrSingularFit):
		return SingularFit
	}
	return Failed
}

// Observe records the outcome of the fit for the given data set.
func (m *Metrics) Observe(set string, fit functions.LinearFunction, err error) {
	m.prometheus.Fits.WithLabelValues(set, Result(err)).Inc()
	if err != nil {
		return
	}
	m.prometheus.ChiSquared.WithLabelValues(set).Set(fit.ChiSquared())
	m.prometheus.RSquared.WithLabelValues(set).Set(fit.RSquared())
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts serving the metrics on the given port in the background.
func (m *Metrics) Serve(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Int("port", port).Msg("could not serve metrics")
		}
	}()
	log.Info().Int("port", port).Msg("serving metrics")
	return srv
}
