package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for operation counters.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
)

// Metrics holds the Prometheus collectors for store operations.
type Metrics struct {
	operations *prometheus.CounterVec
	employees  prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rollcall",
			Name:      "operations_total",
			Help:      "Employee store operations by outcome.",
		}, []string{"operation", "outcome"}),
		employees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rollcall",
			Name:      "employees",
			Help:      "Number of employees currently held in the store.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.employees)
	}
	return m
}

// ObserveOperation counts one store operation.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// SetEmployees records the current store size.
func (m *Metrics) SetEmployees(n int) {
	m.employees.Set(float64(n))
}
