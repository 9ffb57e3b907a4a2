package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimientos. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

const maintenanceSelect = `
	SELECT m.id, m.equipment_id, COALESCE(e.name, ''), m.technician_id, m.performed_by,
	       m.maintenance_date, m.type, m.description, m.cost, m.next_scheduled_date,
	       m.status, m.created_at
	FROM maintenance_records m
	LEFT JOIN equipment e ON e.id = m.equipment_id`

// Create persiste un nuevo registro de mantenimiento y asigna el ID generado.
func (r *MaintenanceRepo) Create(record *entity.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (equipment_id, technician_id, performed_by, maintenance_date, type, description, cost, next_scheduled_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.EquipmentID, record.TechnicianID, record.PerformedBy, record.MaintenanceDate,
		record.Type, record.Description, record.Cost, record.NextScheduledDate,
		record.Status, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert maintenance record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID con el nombre del equipo resuelto.
func (r *MaintenanceRepo) GetByID(id int64) (*entity.MaintenanceRecord, error) {
	var m entity.MaintenanceRecord
	err := r.q.QueryRow(context.Background(), maintenanceSelect+` WHERE m.id = $1`, id).Scan(
		&m.ID, &m.EquipmentID, &m.EquipmentName, &m.TechnicianID, &m.PerformedBy,
		&m.MaintenanceDate, &m.Type, &m.Description, &m.Cost, &m.NextScheduledDate,
		&m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance record: %w", err)
	}
	return &m, nil
}

// Update actualiza un registro existente.
func (r *MaintenanceRepo) Update(record *entity.MaintenanceRecord) error {
	query := `
		UPDATE maintenance_records SET equipment_id = $2, technician_id = $3, performed_by = $4,
		       maintenance_date = $5, type = $6, description = $7, cost = $8,
		       next_scheduled_date = $9, status = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.EquipmentID, record.TechnicianID, record.PerformedBy,
		record.MaintenanceDate, record.Type, record.Description, record.Cost,
		record.NextScheduledDate, record.Status,
	)
	if err != nil {
		return fmt.Errorf("update maintenance record: %w", err)
	}
	return nil
}

// List lista todos los registros, los más recientes primero.
func (r *MaintenanceRepo) List() ([]*entity.MaintenanceRecord, error) {
	return r.queryList(maintenanceSelect + ` ORDER BY m.maintenance_date DESC, m.id DESC`)
}

// ListByEquipment lista el historial de mantenimiento de un equipo.
func (r *MaintenanceRepo) ListByEquipment(equipmentID int64) ([]*entity.MaintenanceRecord, error) {
	return r.queryList(maintenanceSelect+` WHERE m.equipment_id = $1 ORDER BY m.maintenance_date DESC, m.id DESC`, equipmentID)
}

func (r *MaintenanceRepo) queryList(query string, args ...any) ([]*entity.MaintenanceRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceRecord
	for rows.Next() {
		var m entity.MaintenanceRecord
		if err := rows.Scan(&m.ID, &m.EquipmentID, &m.EquipmentName, &m.TechnicianID, &m.PerformedBy,
			&m.MaintenanceDate, &m.Type, &m.Description, &m.Cost, &m.NextScheduledDate,
			&m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un registro por ID.
func (r *MaintenanceRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM maintenance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance record: %w", err)
	}
	return nil
}
