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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un nuevo equipo y asigna el ID generado.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (name, description, category, serial_number, model, supplier_id, purchase_date, purchase_price, status, next_maintenance_date, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		equipment.Name, equipment.Description, equipment.Category, equipment.SerialNumber,
		equipment.Model, equipment.SupplierID, equipment.PurchaseDate, equipment.PurchasePrice,
		equipment.Status, equipment.NextMaintenanceDate, equipment.Location,
		equipment.CreatedAt, equipment.UpdatedAt,
	).Scan(&equipment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID con el nombre del proveedor resuelto.
func (r *EquipmentRepo) GetByID(id int64) (*entity.Equipment, error) {
	query := `
		SELECT e.id, e.name, e.description, e.category, e.serial_number, e.model, e.supplier_id,
		       COALESCE(s.name, ''), e.purchase_date, e.purchase_price, e.status,
		       e.next_maintenance_date, e.location, e.created_at, e.updated_at
		FROM equipment e
		LEFT JOIN suppliers s ON s.id = e.supplier_id
		WHERE e.id = $1`
	var e entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &e.SerialNumber, &e.Model,
		&e.SupplierID, &e.SupplierName, &e.PurchaseDate, &e.PurchasePrice, &e.Status,
		&e.NextMaintenanceDate, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

// Update actualiza un equipo existente.
func (r *EquipmentRepo) Update(equipment *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $2, description = $3, category = $4, serial_number = $5, model = $6,
		       supplier_id = $7, purchase_date = $8, purchase_price = $9, status = $10,
		       next_maintenance_date = $11, location = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Name, equipment.Description, equipment.Category,
		equipment.SerialNumber, equipment.Model, equipment.SupplierID, equipment.PurchaseDate,
		equipment.PurchasePrice, equipment.Status, equipment.NextMaintenanceDate,
		equipment.Location, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// List lista todos los equipos ordenados por nombre.
func (r *EquipmentRepo) List() ([]*entity.Equipment, error) {
	query := `
		SELECT e.id, e.name, e.description, e.category, e.serial_number, e.model, e.supplier_id,
		       COALESCE(s.name, ''), e.purchase_date, e.purchase_price, e.status,
		       e.next_maintenance_date, e.location, e.created_at, e.updated_at
		FROM equipment e
		LEFT JOIN suppliers s ON s.id = e.supplier_id
		ORDER BY e.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.SerialNumber, &e.Model,
			&e.SupplierID, &e.SupplierName, &e.PurchaseDate, &e.PurchasePrice, &e.Status,
			&e.NextMaintenanceDate, &e.Location, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un equipo por ID. Sus registros de mantenimiento se
// eliminan en cascada (no tienen sentido sin el equipo).
func (r *EquipmentRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}
