package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/rentschedule"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// Fakes en memoria para los casos de uso. Ignoran el alcance (eso lo cubren
// los filtros SQL); aquí solo interesa la lógica de la capa de aplicación.

// ──────────────────────────────────────────────────────────────────────────────
// fakePropertyRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakePropertyRepo struct {
	manageable map[string]bool
}

func newFakePropertyRepo(manageableIDs ...string) *fakePropertyRepo {
	m := make(map[string]bool, len(manageableIDs))
	for _, id := range manageableIDs {
		m[id] = true
	}
	return &fakePropertyRepo{manageable: m}
}

func (r *fakePropertyRepo) Create(p *entity.Property) error { return nil }
func (r *fakePropertyRepo) GetByID(access scope.Access, id string) (*entity.Property, error) {
	return nil, nil
}
func (r *fakePropertyRepo) List(access scope.Access, limit, offset int) ([]*entity.Property, error) {
	return nil, nil
}
func (r *fakePropertyRepo) Update(access scope.Access, p *entity.Property) error { return nil }
func (r *fakePropertyRepo) Delete(access scope.Access, id string) error          { return nil }
func (r *fakePropertyRepo) IsManageable(access scope.Access, id string) (bool, error) {
	return r.manageable[id], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeUserRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	m := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		m[id] = &entity.User{ID: id, Role: scope.RoleTenant}
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeTenantRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	tenants    map[string]*entity.Tenant
	manageable map[string]bool
	failCreate error
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:    make(map[string]*entity.Tenant),
		manageable: make(map[string]bool),
	}
}

func (r *fakeTenantRepo) put(t *entity.Tenant) {
	r.tenants[t.ID] = t
	r.manageable[t.ID] = true
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) GetByID(access scope.Access, id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenantRepo) List(access scope.Access, limit, offset int) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTenantRepo) ListByProperty(access scope.Access, propertyID string) ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	for _, t := range r.tenants {
		if t.PropertyID == propertyID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTenantRepo) Update(access scope.Access, t *entity.Tenant) error {
	if _, ok := r.tenants[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) Delete(access scope.Access, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

func (r *fakeTenantRepo) IsManageable(access scope.Access, id string) (bool, error) {
	return r.manageable[id], nil
}

func (r *fakeTenantRepo) snapshot() map[string]*entity.Tenant {
	snap := make(map[string]*entity.Tenant, len(r.tenants))
	for k, v := range r.tenants {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeRentRepo
// ──────────────────────────────────────────────────────────────────────────────

type periodKey struct {
	tenantID string
	month    int
	year     int
}

type fakeRentRepo struct {
	payments map[periodKey]*entity.RentPayment
	// failOnInsert hace fallar la n-ésima inserción (1-based); 0 desactiva.
	failOnInsert int
	inserts      int
}

func newFakeRentRepo() *fakeRentRepo {
	return &fakeRentRepo{payments: make(map[periodKey]*entity.RentPayment)}
}

func (r *fakeRentRepo) key(rp *entity.RentPayment) periodKey {
	return periodKey{tenantID: rp.TenantID, month: rp.PeriodMonth, year: rp.PeriodYear}
}

func (r *fakeRentRepo) Create(rp *entity.RentPayment) error {
	if _, exists := r.payments[r.key(rp)]; exists {
		return domain.ErrDuplicate
	}
	cp := *rp
	r.payments[r.key(rp)] = &cp
	return nil
}

func (r *fakeRentRepo) CreateIfAbsent(rp *entity.RentPayment) error {
	r.inserts++
	if r.failOnInsert > 0 && r.inserts == r.failOnInsert {
		return fmt.Errorf("fallo simulado en la inserción %d", r.inserts)
	}
	if _, exists := r.payments[r.key(rp)]; exists {
		return nil
	}
	cp := *rp
	r.payments[r.key(rp)] = &cp
	return nil
}

func (r *fakeRentRepo) GetByID(access scope.Access, id string) (*entity.RentPayment, error) {
	for _, rp := range r.payments {
		if rp.ID == id {
			cp := *rp
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRentRepo) List(access scope.Access, limit, offset int) ([]*entity.RentPayment, error) {
	out := make([]*entity.RentPayment, 0, len(r.payments))
	for _, rp := range r.payments {
		cp := *rp
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRentRepo) ListByTenant(access scope.Access, tenantID string) ([]*entity.RentPayment, error) {
	var out []*entity.RentPayment
	for _, rp := range r.payments {
		if rp.TenantID == tenantID {
			cp := *rp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRentRepo) Update(access scope.Access, rp *entity.RentPayment) error {
	for k, existing := range r.payments {
		if existing.ID == rp.ID {
			delete(r.payments, k)
			cp := *rp
			r.payments[r.key(rp)] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeRentRepo) Delete(access scope.Access, id string) error {
	for k, existing := range r.payments {
		if existing.ID == id {
			delete(r.payments, k)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeRentRepo) CountLateCandidates(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	day := rentschedule.DayOf(today)
	for _, rp := range r.payments {
		if rp.Status == entity.RentDue && rp.DueDate.Before(day) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRentRepo) MarkLate(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	day := rentschedule.DayOf(today)
	for _, rp := range r.payments {
		if rp.Status == entity.RentDue && rp.DueDate.Before(day) {
			rp.Status = entity.RentLate
			n++
		}
	}
	return n, nil
}

func (r *fakeRentRepo) snapshot() map[periodKey]*entity.RentPayment {
	snap := make(map[periodKey]*entity.RentPayment, len(r.payments))
	for k, v := range r.payments {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeTxRunner
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner emula la semántica transaccional: toma una instantánea antes de
// ejecutar el callback y la restaura si este devuelve error.
type fakeTxRunner struct {
	tenants *fakeTenantRepo
	rents   *fakeRentRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	tenants repository.TenantRepository,
	rents repository.RentPaymentRepository,
) error) error {
	tenantSnap := r.tenants.snapshot()
	rentSnap := r.rents.snapshot()
	if err := fn(r.tenants, r.rents); err != nil {
		r.tenants.tenants = tenantSnap
		r.rents.payments = rentSnap
		return err
	}
	return nil
}

// asValidation extrae un ValidationError de la cadena de errores.
func asValidation(err error) *domain.ValidationError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
