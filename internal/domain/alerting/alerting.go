// Package alerting implementa el evaluador de estados derivados del
// inventario (servicio de dominio, funciones puras de (campos, ahora)).
//
// Todas las comparaciones de fechas son por día calendario: se ignora la
// hora del día de ambos operandos. Política de vencimiento: un medicamento
// NO está vencido el mismo día de su fecha de vencimiento; lo está a partir
// del día siguiente.
package alerting

import "time"

// Umbrales por defecto. Configurables vía ALERT_* en pkg/config.
const (
	DefaultLowStockThreshold     = 50
	DefaultExpiryWindowDays      = 30
	DefaultMaintenanceWindowDays = 30
)

// dateOnly normaliza un instante a medianoche UTC de su día calendario.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil devuelve la diferencia en días calendario completos entre date y
// now (positiva si date es futura, negativa si ya pasó). Los días parciales
// no cuentan: solo se comparan los componentes de fecha.
func DaysUntil(date, now time.Time) int {
	return int(dateOnly(date).Sub(dateOnly(now)).Hours() / 24)
}

// IsExpired reporta si expiryDate ya pasó: expiryDate < now por día
// calendario. El día exacto del vencimiento todavía no cuenta como vencido.
func IsExpired(expiryDate, now time.Time) bool {
	return DaysUntil(expiryDate, now) < 0
}

// IsExpiringSoon reporta si expiryDate cae dentro de la ventana
// [now, now+windowDays], ambos extremos incluidos. Un medicamento ya vencido
// nunca es "por vencer": IsExpired e IsExpiringSoon son mutuamente
// excluyentes por construcción.
func IsExpiringSoon(expiryDate, now time.Time, windowDays int) bool {
	days := DaysUntil(expiryDate, now)
	return days >= 0 && days <= windowDays
}

// IsLowStock reporta si quantity está por debajo del umbral (estricto:
// quantity == threshold no es stock bajo).
func IsLowStock(quantity, threshold int) bool {
	return quantity < threshold
}

// IsMaintenanceDue reporta si el próximo mantenimiento está dentro de la
// ventana [now, now+windowDays] o ya está vencido. Sin fecha programada no
// hay mantenimiento pendiente.
func IsMaintenanceDue(nextMaintenanceDate *time.Time, now time.Time, windowDays int) bool {
	if nextMaintenanceDate == nil {
		return false
	}
	return DaysUntil(*nextMaintenanceDate, now) <= windowDays
}
