package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/order"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// OrderPDFGenerator puerto de salida para renderizar la hoja imprimible de
// una orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder) ([]byte, error)
}

// OrderUseCase casos de uso para órdenes de compra. El total se recalcula en
// cada create/update y los cambios de estado pasan por la máquina de estados
// del paquete order.
type OrderUseCase struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	pdfGen       OrderPDFGenerator
}

// NewOrderUseCase construye el caso de uso. pdfGen puede ser nil si la
// instalación no expone la hoja imprimible.
func NewOrderUseCase(repo repository.PurchaseOrderRepository, supplierRepo repository.SupplierRepository, pdfGen OrderPDFGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, supplierRepo: supplierRepo, pdfGen: pdfGen}
}

// newOrderNumber genera un número de orden legible y único: PO- más los
// primeros 8 caracteres de un UUID en mayúsculas. Se asigna una sola vez.
func newOrderNumber() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create crea una orden en estado PENDING con número asignado por el sistema.
// orderedBy registra qué usuario la creó (referencia débil desde la sesión).
func (uc *OrderUseCase) Create(orderedBy int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.SupplierID <= 0 {
		return nil, domain.NewValidationError("supplierId", "es requerido")
	}
	itemType := entity.ItemType(in.ItemType)
	if !entity.ValidItemType(itemType) {
		return nil, domain.NewValidationError("itemType", "debe ser MEDICINE, EQUIPMENT o SUPPLIES")
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "debe ser >= 0")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.NewValidationError("unitPrice", "debe ser >= 0")
	}
	orderDate, err := parseDate("orderDate", in.OrderDate)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseOptionalDate("deliveryDate", in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if deliveryDate != nil && deliveryDate.Before(orderDate) {
		return nil, domain.NewValidationError("deliveryDate", "debe ser igual o posterior a orderDate")
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		OrderNumber:  newOrderNumber(),
		SupplierID:   in.SupplierID,
		SupplierName: supplier.Name,
		OrderedByID:  &orderedBy,
		ItemType:     itemType,
		ItemName:     in.ItemName,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		TotalAmount:  order.Total(in.Quantity, in.UnitPrice),
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Status:       entity.OrderPending,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(po); err != nil {
		return nil, err
	}
	return toOrderResponse(po), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(po), nil
}

// Update aplica una actualización parcial. OrderNumber y Status son
// intocables aquí; TotalAmount se recalcula siempre, nunca se toma del
// caller.
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		po.SupplierID = *in.SupplierID
		po.SupplierName = supplier.Name
	}
	if in.ItemType != nil {
		itemType := entity.ItemType(*in.ItemType)
		if !entity.ValidItemType(itemType) {
			return nil, domain.NewValidationError("itemType", "debe ser MEDICINE, EQUIPMENT o SUPPLIES")
		}
		po.ItemType = itemType
	}
	if in.ItemName != nil {
		po.ItemName = *in.ItemName
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "debe ser >= 0")
		}
		po.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.NewValidationError("unitPrice", "debe ser >= 0")
		}
		po.UnitPrice = *in.UnitPrice
	}
	if in.OrderDate != nil {
		d, err := parseDate("orderDate", *in.OrderDate)
		if err != nil {
			return nil, err
		}
		po.OrderDate = d
	}
	if in.DeliveryDate != nil {
		d, err := parseOptionalDate("deliveryDate", *in.DeliveryDate)
		if err != nil {
			return nil, err
		}
		po.DeliveryDate = d
	}
	if po.DeliveryDate != nil && po.DeliveryDate.Before(po.OrderDate) {
		return nil, domain.NewValidationError("deliveryDate", "debe ser igual o posterior a orderDate")
	}
	po.TotalAmount = order.Total(po.Quantity, po.UnitPrice)
	po.UpdatedAt = time.Now()
	if err := uc.repo.Update(po); err != nil {
		return nil, err
	}
	return toOrderResponse(po), nil
}

// UpdateStatus ejecuta una transición de estado explícita validada por la
// máquina de estados. Una transición ilegal se rechaza antes de persistir.
func (uc *OrderUseCase) UpdateStatus(id int64, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	next, err := order.Transition(po.Status, entity.OrderStatus(in.Status))
	if err != nil {
		return nil, err
	}
	if next == po.Status {
		// No-op idempotente: no hay nada que persistir.
		return toOrderResponse(po), nil
	}
	po.Status = next
	po.UpdatedAt = time.Now()
	if err := uc.repo.Update(po); err != nil {
		return nil, err
	}
	return toOrderResponse(po), nil
}

// List lista todas las órdenes.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toOrderResponse(po))
	}
	return items, nil
}

// PDF renderiza la hoja imprimible de la orden. Devuelve los bytes y el
// nombre de archivo sugerido (a partir del order number).
func (uc *OrderUseCase) PDF(ctx context.Context, id int64) ([]byte, string, error) {
	if uc.pdfGen == nil {
		return nil, "", domain.ErrNotFound
	}
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if po == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.pdfGen.GenerateOrderPDF(ctx, po)
	if err != nil {
		return nil, "", err
	}
	return data, po.OrderNumber + ".pdf", nil
}

// Delete elimina físicamente una orden.
func (uc *OrderUseCase) Delete(id int64) error {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOrderResponse(po *entity.PurchaseOrder) *dto.OrderResponse {
	if po == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           po.ID,
		OrderNumber:  po.OrderNumber,
		SupplierID:   po.SupplierID,
		SupplierName: po.SupplierName,
		OrderedByID:  po.OrderedByID,
		ItemType:     string(po.ItemType),
		ItemName:     po.ItemName,
		Quantity:     po.Quantity,
		UnitPrice:    po.UnitPrice,
		TotalAmount:  po.TotalAmount,
		OrderDate:    formatDate(po.OrderDate),
		DeliveryDate: formatOptionalDate(po.DeliveryDate),
		Status:       string(po.Status),
		Notes:        po.Notes,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
}
