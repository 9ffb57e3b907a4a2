package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hemis-api/internal/domain/entity"
)

// Seed carga los datos por defecto (usuarios, proveedores, medicamentos y
// equipos) solo cuando las tablas correspondientes están vacías. Es seguro
// ejecutarlo en cada arranque.
func Seed(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	supplierRepo := NewSupplierRepository(tx)
	medicineRepo := NewMedicineRepository(tx)
	equipmentRepo := NewEquipmentRepository(tx)

	if err := seedUsers(ctx, tx, userRepo, log); err != nil {
		return err
	}
	suppliers, err := seedSuppliers(ctx, tx, supplierRepo, log)
	if err != nil {
		return err
	}
	if err := seedMedicines(ctx, tx, medicineRepo, suppliers, log); err != nil {
		return err
	}
	if err := seedEquipment(ctx, tx, equipmentRepo, suppliers, log); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func tableEmpty(ctx context.Context, q Querier, table string) (bool, error) {
	var count int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}

func seedUsers(ctx context.Context, q Querier, repo *UserRepo, log zerolog.Logger) error {
	empty, err := tableEmpty(ctx, q, "users")
	if err != nil || !empty {
		return err
	}
	defaults := []struct {
		username, password, fullName, email, role string
	}{
		{"admin", "admin123", "System Administrator", "admin@hemis.com", entity.RoleAdmin},
		{"pharmacist", "pharm123", "John Pharmacist", "pharmacist@hemis.com", entity.RolePharmacist},
		{"technician", "tech123", "Jane Technician", "technician@hemis.com", entity.RoleTechnician},
	}
	now := time.Now()
	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		u := &entity.User{
			Username:     d.username,
			PasswordHash: string(hash),
			FullName:     d.fullName,
			Email:        d.email,
			Role:         d.role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(u); err != nil {
			return fmt.Errorf("seed user %s: %w", d.username, err)
		}
	}
	log.Info().Msg("Usuarios por defecto inicializados")
	return nil
}

func seedSuppliers(ctx context.Context, q Querier, repo *SupplierRepo, log zerolog.Logger) ([]*entity.Supplier, error) {
	empty, err := tableEmpty(ctx, q, "suppliers")
	if err != nil {
		return nil, err
	}
	if !empty {
		return repo.List()
	}
	now := time.Now()
	suppliers := []*entity.Supplier{
		{
			Name: "MediPharma Ltd", ContactPerson: "Robert Smith",
			Email: "contact@medipharma.com", Phone: "+250788123456",
			Address: "KG 11 Ave, Kigali", Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "HealthEquip Solutions", ContactPerson: "Sarah Johnson",
			Email: "info@healthequip.com", Phone: "+250788234567",
			Address: "KN 5 Rd, Kigali", Active: true, CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, s := range suppliers {
		if err := repo.Create(s); err != nil {
			return nil, fmt.Errorf("seed supplier %s: %w", s.Name, err)
		}
	}
	log.Info().Msg("Proveedores por defecto inicializados")
	return suppliers, nil
}

func seedMedicines(ctx context.Context, q Querier, repo *MedicineRepo, suppliers []*entity.Supplier, log zerolog.Logger) error {
	empty, err := tableEmpty(ctx, q, "medicines")
	if err != nil || !empty {
		return err
	}
	if len(suppliers) == 0 {
		return nil
	}
	supplierID := suppliers[0].ID
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	medicines := []*entity.Medicine{
		{
			Name: "Paracetamol 500mg", Description: "Pain relief and fever reducer",
			Category: "Analgesics", Quantity: 500, UnitPrice: decimal.NewFromFloat(0.50),
			ExpiryDate: today.AddDate(0, 18, 0), BatchNumber: "PAR-2024-001",
			SupplierID: &supplierID, CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "Amoxicillin 250mg", Description: "Antibiotic",
			Category: "Antibiotics", Quantity: 300, UnitPrice: decimal.NewFromFloat(1.20),
			ExpiryDate: today.AddDate(0, 12, 0), BatchNumber: "AMX-2024-002",
			SupplierID: &supplierID, CreatedAt: now, UpdatedAt: now,
		},
		// Insulin queda con stock bajo y vencimiento cercano a propósito:
		// hace visible el tablero de alertas en una instalación fresca.
		{
			Name: "Insulin 100IU/ml", Description: "Diabetes management",
			Category: "Diabetes", Quantity: 45, UnitPrice: decimal.NewFromFloat(15.00),
			ExpiryDate: today.AddDate(0, 0, 20), BatchNumber: "INS-2024-003",
			SupplierID: &supplierID, CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, m := range medicines {
		if err := repo.Create(m); err != nil {
			return fmt.Errorf("seed medicine %s: %w", m.Name, err)
		}
	}
	log.Info().Msg("Medicamentos por defecto inicializados")
	return nil
}

func seedEquipment(ctx context.Context, q Querier, repo *EquipmentRepo, suppliers []*entity.Supplier, log zerolog.Logger) error {
	empty, err := tableEmpty(ctx, q, "equipment")
	if err != nil || !empty {
		return err
	}
	if len(suppliers) < 2 {
		return nil
	}
	supplierID := suppliers[1].ID
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	date := func(t time.Time) *time.Time { return &t }
	equipment := []*entity.Equipment{
		{
			Name: "X-Ray Machine", Description: "Digital X-Ray imaging system",
			Category: "Imaging", SerialNumber: "XR-2023-0015", Model: "Siemens Luminos dRF",
			SupplierID: &supplierID, PurchaseDate: date(today.AddDate(-2, 0, 0)),
			PurchasePrice: decimal.NewFromInt(85000), Status: entity.EquipmentOperational,
			NextMaintenanceDate: date(today.AddDate(0, 2, 0)), Location: "Radiology Department",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "Ultrasound Scanner", Description: "Portable ultrasound device",
			Category: "Imaging", SerialNumber: "US-2024-0032", Model: "GE LOGIQ P9",
			SupplierID: &supplierID, PurchaseDate: date(today.AddDate(0, -6, 0)),
			PurchasePrice: decimal.NewFromInt(45000), Status: entity.EquipmentOperational,
			NextMaintenanceDate: date(today.AddDate(0, 4, 0)), Location: "OB/GYN Department",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "Patient Monitor", Description: "Vital signs monitoring",
			Category: "Monitoring", SerialNumber: "PM-2024-0128", Model: "Philips IntelliVue MX40",
			SupplierID: &supplierID, PurchaseDate: date(today.AddDate(0, -3, 0)),
			PurchasePrice: decimal.NewFromInt(8500), Status: entity.EquipmentMaintenance,
			NextMaintenanceDate: date(today.AddDate(0, 0, 5)), Location: "ICU",
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, e := range equipment {
		if err := repo.Create(e); err != nil {
			return fmt.Errorf("seed equipment %s: %w", e.Name, err)
		}
	}
	log.Info().Msg("Equipos por defecto inicializados")
	return nil
}
