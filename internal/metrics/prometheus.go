package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "fit"

// Prometheus holds the collectors for the line fits.
type Prometheus struct {
	Fits       *prometheus.CounterVec
	ChiSquared *prometheus.GaugeVec
	RSquared   *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the fit collectors, unregistered.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "total",
				Help:      "number of line fits by data set and result",
			}, []string{"set", "result"}),
		ChiSquared: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "chi_squared",
				Help:      "reduced chi-squared of the last fit",
			}, []string{"set"}),
		RSquared: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "r_squared",
				Help:      "coefficient of determination of the last fit",
			}, []string{"set"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.ChiSquared, p.RSquared}
}
