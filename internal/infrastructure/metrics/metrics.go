// Package metrics expone los contadores Prometheus del servicio: tráfico
// HTTP y los gauges de alertas de inventario que refresca el job diario.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores registrados del servicio.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec

	ExpiredMedicines      prometheus.Gauge
	ExpiringSoonMedicines prometheus.Gauge
	LowStockMedicines     prometheus.Gauge
	MaintenanceDue        prometheus.Gauge
}

// New construye y registra todos los colectores en un registry propio
// (aislado del registry global para no chocar en tests).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hemis",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP por método, ruta y código de estado.",
		}, []string{"method", "path", "status"}),
		ExpiredMedicines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hemis",
			Subsystem: "inventory",
			Name:      "expired_medicines",
			Help:      "Medicamentos vencidos según el último chequeo.",
		}),
		ExpiringSoonMedicines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hemis",
			Subsystem: "inventory",
			Name:      "expiring_soon_medicines",
			Help:      "Medicamentos que vencen dentro de la ventana configurada.",
		}),
		LowStockMedicines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hemis",
			Subsystem: "inventory",
			Name:      "low_stock_medicines",
			Help:      "Medicamentos con stock por debajo del umbral configurado.",
		}),
		MaintenanceDue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hemis",
			Subsystem: "inventory",
			Name:      "maintenance_due_equipment",
			Help:      "Equipos con mantenimiento vencido o próximo.",
		}),
	}
	reg.MustRegister(
		m.HTTPRequests,
		m.ExpiredMedicines,
		m.ExpiringSoonMedicines,
		m.LowStockMedicines,
		m.MaintenanceDue,
	)
	return m
}

// Handler devuelve el handler del endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
