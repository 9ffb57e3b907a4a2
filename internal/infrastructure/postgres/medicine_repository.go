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

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador de persistencia para medicamentos. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento y asigna el ID generado.
func (r *MedicineRepo) Create(medicine *entity.Medicine) error {
	query := `
		INSERT INTO medicines (name, description, category, quantity, unit_price, expiry_date, batch_number, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		medicine.Name, medicine.Description, medicine.Category, medicine.Quantity,
		medicine.UnitPrice, medicine.ExpiryDate, medicine.BatchNumber, medicine.SupplierID,
		medicine.CreatedAt, medicine.UpdatedAt,
	).Scan(&medicine.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID con el nombre del proveedor resuelto.
func (r *MedicineRepo) GetByID(id int64) (*entity.Medicine, error) {
	query := `
		SELECT m.id, m.name, m.description, m.category, m.quantity, m.unit_price, m.expiry_date,
		       m.batch_number, m.supplier_id, COALESCE(s.name, ''), m.created_at, m.updated_at
		FROM medicines m
		LEFT JOIN suppliers s ON s.id = m.supplier_id
		WHERE m.id = $1`
	var m entity.Medicine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Description, &m.Category, &m.Quantity, &m.UnitPrice,
		&m.ExpiryDate, &m.BatchNumber, &m.SupplierID, &m.SupplierName, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// Update actualiza un medicamento existente.
func (r *MedicineRepo) Update(medicine *entity.Medicine) error {
	query := `
		UPDATE medicines SET name = $2, description = $3, category = $4, quantity = $5, unit_price = $6,
		       expiry_date = $7, batch_number = $8, supplier_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.Name, medicine.Description, medicine.Category, medicine.Quantity,
		medicine.UnitPrice, medicine.ExpiryDate, medicine.BatchNumber, medicine.SupplierID,
		medicine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	return nil
}

// List lista todos los medicamentos ordenados por nombre. Los listados
// derivados (stock bajo, por vencer) se proyectan en el caso de uso.
func (r *MedicineRepo) List() ([]*entity.Medicine, error) {
	query := `
		SELECT m.id, m.name, m.description, m.category, m.quantity, m.unit_price, m.expiry_date,
		       m.batch_number, m.supplier_id, COALESCE(s.name, ''), m.created_at, m.updated_at
		FROM medicines m
		LEFT JOIN suppliers s ON s.id = m.supplier_id
		ORDER BY m.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Quantity, &m.UnitPrice,
			&m.ExpiryDate, &m.BatchNumber, &m.SupplierID, &m.SupplierName, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un medicamento por ID.
func (r *MedicineRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return nil
}
