// Package metrics cuenta los cambios del Store en Prometheus.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"pet-shelter/internal/domain/pets"
)

// PetsMetrics implementa pets.Observer.
type PetsMetrics struct {
	Changes *prometheus.CounterVec
	Rows    *prometheus.CounterVec
}

// NewPetsMetrics crea y registra las métricas en registry.
func NewPetsMetrics(registry prometheus.Registerer) (*PetsMetrics, error) {
	m := &PetsMetrics{
		Changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pet_shelter_changes_total",
			Help: "Total number of store writes that changed at least one row, by operation",
		}, []string{"op"}),
		Rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pet_shelter_rows_affected_total",
			Help: "Total number of pet rows affected by store writes, by operation",
		}, []string{"op"}),
	}

	for _, c := range []prometheus.Collector{m.Changes, m.Rows} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register pets metrics: %w", err)
		}
	}
	return m, nil
}

func (m *PetsMetrics) PetsChanged(_ context.Context, c pets.Change) {
	op := string(c.Op)
	m.Changes.WithLabelValues(op).Inc()
	m.Rows.WithLabelValues(op).Add(float64(c.Rows))
}
