// Package alerts implementa el chequeo periódico de alertas de inventario:
// recorre medicamentos y equipos, registra en el log los hallazgos y
// refresca los gauges de Prometheus.
package alerts

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
	"github.com/jhoicas/hemis-api/internal/infrastructure/metrics"
)

// Checker evalúa el estado de alertas del inventario completo.
type Checker struct {
	cfg     alerting.Config
	medRepo repository.MedicineRepository
	eqRepo  repository.EquipmentRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewChecker construye el chequeador. metrics puede ser nil (solo logging).
func NewChecker(cfg alerting.Config, medRepo repository.MedicineRepository, eqRepo repository.EquipmentRepository, m *metrics.Metrics, log zerolog.Logger) *Checker {
	return &Checker{cfg: cfg, medRepo: medRepo, eqRepo: eqRepo, metrics: m, log: log}
}

// Run ejecuta un chequeo ahora y luego uno cada interval, hasta que el
// contexto se cancele. Pensado para correr en una goroutine desde main.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(time.Now())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.Check(now)
		}
	}
}

// Check evalúa todas las alertas con el instante dado como "hoy".
func (c *Checker) Check(now time.Time) {
	c.checkMedicines(now)
	c.checkEquipment(now)
}

func (c *Checker) checkMedicines(now time.Time) {
	list, err := c.medRepo.List()
	if err != nil {
		c.log.Error().Err(err).Msg("Chequeo de vencimientos: no se pudo listar medicamentos")
		return
	}
	var expired, expiring, lowStock int
	for _, m := range list {
		switch {
		case alerting.IsExpired(m.ExpiryDate, now):
			expired++
			c.log.Warn().
				Str("medicine", m.Name).
				Int64("id", m.ID).
				Time("expiryDate", m.ExpiryDate).
				Msg("Medicamento vencido")
		case alerting.IsExpiringSoon(m.ExpiryDate, now, c.cfg.ExpiryWindowDays):
			expiring++
		}
		if alerting.IsLowStock(m.Quantity, c.cfg.LowStockThreshold) {
			lowStock++
		}
	}
	if expired > 0 {
		c.log.Warn().Int("count", expired).Msg("Medicamentos vencidos encontrados")
	}
	if expiring > 0 {
		c.log.Info().
			Int("count", expiring).
			Int("windowDays", c.cfg.ExpiryWindowDays).
			Msg("Medicamentos por vencer dentro de la ventana")
	}
	if c.metrics != nil {
		c.metrics.ExpiredMedicines.Set(float64(expired))
		c.metrics.ExpiringSoonMedicines.Set(float64(expiring))
		c.metrics.LowStockMedicines.Set(float64(lowStock))
	}
}

func (c *Checker) checkEquipment(now time.Time) {
	list, err := c.eqRepo.List()
	if err != nil {
		c.log.Error().Err(err).Msg("Chequeo de mantenimiento: no se pudo listar equipos")
		return
	}
	var due int
	for _, e := range list {
		if alerting.IsMaintenanceDue(e.NextMaintenanceDate, now, c.cfg.MaintenanceWindowDays) {
			due++
		}
	}
	if due > 0 {
		c.log.Info().
			Int("count", due).
			Int("windowDays", c.cfg.MaintenanceWindowDays).
			Msg("Equipos con mantenimiento vencido o próximo")
	}
	if c.metrics != nil {
		c.metrics.MaintenanceDue.Set(float64(due))
	}
}
