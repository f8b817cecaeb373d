package monitoring

import (
	"errors"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PathMetrics holds the Prometheus metrics of the path layer.
type PathMetrics struct {
	Operations *prometheus.CounterVec
	Errors     *prometheus.CounterVec
	Absorbed   *prometheus.CounterVec
}

var _ paths.Observer = (*PathMetrics)(nil)

// NewPathMetrics creates the path metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewPathMetrics(reg prometheus.Registerer, namespace string) *PathMetrics {
	factory := promauto.With(reg)

	return &PathMetrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_operations_total",
				Help:      "Total number of path operations",
			},
			[]string{"op", "status"},
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_errors_total",
				Help:      "Total number of failed path operations by error kind",
			},
			[]string{"op", "kind"},
		),
		Absorbed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_absorbed_errors_total",
				Help:      "Total number of path failures logged and replaced by a fallback",
			},
			[]string{"op"},
		),
	}
}

// ObserveOperation records the outcome of a path operation.
func (m *PathMetrics) ObserveOperation(op string, err error) {
	status := "success"
	if err != nil {
		status = "error"
		m.Errors.WithLabelValues(op, errorKind(err)).Inc()
	}
	m.Operations.WithLabelValues(op, status).Inc()
}

// ObserveAbsorbed records a failure that was logged instead of returned.
func (m *PathMetrics) ObserveAbsorbed(op string) {
	m.Absorbed.WithLabelValues(op).Inc()
}

func errorKind(err error) string {
	var pathErr *paths.Error
	if errors.As(err, &pathErr) {
		return string(pathErr.Kind)
	}
	return "unknown"
}
