package usecase_test

import (
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria — implementan los puertos del dominio con maps
// e IDs secuenciales, imitando el contrato del adaptador PostgreSQL:
// Get devuelve (nil, nil) si no existe y Create rechaza duplicados.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	nextID int64
	items  map[int64]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: make(map[int64]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for i := int64(1); i <= r.nextID; i++ {
		if s, ok := r.items[i]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeMedicineRepo struct {
	nextID int64
	items  map[int64]*entity.Medicine
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{items: make(map[int64]*entity.Medicine)}
}

func (r *fakeMedicineRepo) Create(m *entity.Medicine) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMedicineRepo) GetByID(id int64) (*entity.Medicine, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMedicineRepo) Update(m *entity.Medicine) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMedicineRepo) List() ([]*entity.Medicine, error) {
	var out []*entity.Medicine
	for i := int64(1); i <= r.nextID; i++ {
		if m, ok := r.items[i]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeEquipmentRepo struct {
	nextID int64
	items  map[int64]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[int64]*entity.Equipment)}
}

func (r *fakeEquipmentRepo) Create(e *entity.Equipment) error {
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(id int64) (*entity.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) Update(e *entity.Equipment) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) List() ([]*entity.Equipment, error) {
	var out []*entity.Equipment
	for i := int64(1); i <= r.nextID; i++ {
		if e, ok := r.items[i]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEquipmentRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeOrderRepo struct {
	nextID  int64
	items   map[int64]*entity.PurchaseOrder
	updates int // contador de Update para verificar no-ops
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: make(map[int64]*entity.PurchaseOrder)}
}

func (r *fakeOrderRepo) Create(o *entity.PurchaseOrder) error {
	for _, existing := range r.items {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	o.ID = r.nextID
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Update(o *entity.PurchaseOrder) error {
	r.updates++
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for i := int64(1); i <= r.nextID; i++ {
		if o, ok := r.items[i]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeMaintenanceRepo struct {
	nextID int64
	items  map[int64]*entity.MaintenanceRecord
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{items: make(map[int64]*entity.MaintenanceRecord)}
}

func (r *fakeMaintenanceRepo) Create(m *entity.MaintenanceRecord) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(id int64) (*entity.MaintenanceRecord, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaintenanceRepo) Update(m *entity.MaintenanceRecord) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMaintenanceRepo) List() ([]*entity.MaintenanceRecord, error) {
	var out []*entity.MaintenanceRecord
	for i := int64(1); i <= r.nextID; i++ {
		if m, ok := r.items[i]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMaintenanceRepo) ListByEquipment(equipmentID int64) ([]*entity.MaintenanceRecord, error) {
	all, _ := r.List()
	var out []*entity.MaintenanceRecord
	for _, m := range all {
		if m.EquipmentID == equipmentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMaintenanceRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	nextID int64
	items  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.items {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for i := int64(1); i <= r.nextID; i++ {
		if u, ok := r.items[i]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Deactivate(id int64) error {
	if u, ok := r.items[id]; ok {
		u.Active = false
	}
	return nil
}
