package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una nueva orden y asigna el ID generado. El order_number
// único viene asignado por el caso de uso; un choque devuelve ErrDuplicate.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (order_number, supplier_id, ordered_by, item_type, item_name, quantity, unit_price, total_amount, order_date, delivery_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.OrderNumber, order.SupplierID, order.OrderedByID, order.ItemType,
		order.ItemName, order.Quantity, order.UnitPrice, order.TotalAmount,
		order.OrderDate, order.DeliveryDate, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID con el nombre del proveedor resuelto.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.order_number, COALESCE(o.supplier_id, 0), COALESCE(s.name, ''), o.ordered_by,
		       o.item_type, o.item_name, o.quantity, o.unit_price, o.total_amount,
		       o.order_date, o.delivery_date, o.status, o.notes, o.created_at, o.updated_at
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.SupplierID, &o.SupplierName, &o.OrderedByID,
		&o.ItemType, &o.ItemName, &o.Quantity, &o.UnitPrice, &o.TotalAmount,
		&o.OrderDate, &o.DeliveryDate, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// Update actualiza una orden existente. Nunca toca order_number: el número
// es inmutable desde la creación.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET supplier_id = $2, item_type = $3, item_name = $4, quantity = $5,
		       unit_price = $6, total_amount = $7, order_date = $8, delivery_date = $9,
		       status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.ItemType, order.ItemName, order.Quantity,
		order.UnitPrice, order.TotalAmount, order.OrderDate, order.DeliveryDate,
		order.Status, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// List lista todas las órdenes, las más recientes primero.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.order_number, COALESCE(o.supplier_id, 0), COALESCE(s.name, ''), o.ordered_by,
		       o.item_type, o.item_name, o.quantity, o.unit_price, o.total_amount,
		       o.order_date, o.delivery_date, o.status, o.notes, o.created_at, o.updated_at
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		ORDER BY o.order_date DESC, o.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.SupplierID, &o.SupplierName, &o.OrderedByID,
			&o.ItemType, &o.ItemName, &o.Quantity, &o.UnitPrice, &o.TotalAmount,
			&o.OrderDate, &o.DeliveryDate, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una orden por ID.
func (r *PurchaseOrderRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}
