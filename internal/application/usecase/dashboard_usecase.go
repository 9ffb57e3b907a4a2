package usecase

import (
	"time"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// DashboardUseCase agrega los conteos del tablero aplicando el evaluador de
// alerting sobre las colecciones completas. Sin caché: el store autoritativo
// puede cambiar entre llamadas y con estos volúmenes la frescura gana.
type DashboardUseCase struct {
	medicineRepo  repository.MedicineRepository
	equipmentRepo repository.EquipmentRepository
	supplierRepo  repository.SupplierRepository
	orderRepo     repository.PurchaseOrderRepository
	cfg           alerting.Config
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	medicineRepo repository.MedicineRepository,
	equipmentRepo repository.EquipmentRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
	cfg alerting.Config,
) *DashboardUseCase {
	return &DashboardUseCase{
		medicineRepo:  medicineRepo,
		equipmentRepo: equipmentRepo,
		supplierRepo:  supplierRepo,
		orderRepo:     orderRepo,
		cfg:           cfg,
	}
}

// Stats calcula los conteos. ExpiringMedicines incluye vencidos Y por vencer
// (es el contador de atención de farmacia, no solo la ventana).
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsResponse, error) {
	medicines, err := uc.medicineRepo.List()
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipmentRepo.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &dto.DashboardStatsResponse{
		TotalMedicines: len(medicines),
		TotalEquipment: len(equipment),
		TotalSuppliers: len(suppliers),
	}
	for _, m := range medicines {
		if alerting.IsLowStock(m.Quantity, uc.cfg.LowStockThreshold) {
			stats.LowStockMedicines++
		}
		if alerting.IsExpired(m.ExpiryDate, now) ||
			alerting.IsExpiringSoon(m.ExpiryDate, now, uc.cfg.ExpiryWindowDays) {
			stats.ExpiringMedicines++
		}
	}
	for _, e := range equipment {
		if alerting.IsMaintenanceDue(e.NextMaintenanceDate, now, uc.cfg.MaintenanceWindowDays) {
			stats.EquipmentNeedingMaintenance++
		}
	}
	for _, o := range orders {
		if o.Status == entity.OrderPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}
