package dto

// DashboardStatsResponse conteos agregados para el tablero. Es un fold puro
// sobre las colecciones completas; se recalcula en cada llamada (la frescura
// gana sobre el rendimiento con estos volúmenes de datos).
type DashboardStatsResponse struct {
	TotalMedicines              int `json:"totalMedicines"`
	TotalEquipment              int `json:"totalEquipment"`
	TotalSuppliers              int `json:"totalSuppliers"`
	LowStockMedicines           int `json:"lowStockMedicines"`
	ExpiringMedicines           int `json:"expiringMedicines"`
	EquipmentNeedingMaintenance int `json:"equipmentNeedingMaintenance"`
	PendingOrders               int `json:"pendingOrders"`
}
