package alerting

// Config umbrales del evaluador. Son parámetros de proceso con los defaults
// históricos (50 unidades, 30 días); no hay configuración por tenant.
type Config struct {
	LowStockThreshold     int
	ExpiryWindowDays      int
	MaintenanceWindowDays int
}

// DefaultConfig devuelve los umbrales por defecto.
func DefaultConfig() Config {
	return Config{
		LowStockThreshold:     DefaultLowStockThreshold,
		ExpiryWindowDays:      DefaultExpiryWindowDays,
		MaintenanceWindowDays: DefaultMaintenanceWindowDays,
	}
}
