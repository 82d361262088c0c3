package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

const tenantColumns = "t.id, t.user_id, t.property_id, t.full_name, t.email, t.phone, t.lease_start, t.lease_end, t.monthly_rent, t.deposit_amount, t.is_active, t.created_at"

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL
// (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para inquilinos.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo inquilino.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, user_id, property_id, full_name, email, phone, lease_start, lease_end, monthly_rent, deposit_amount, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.PropertyID, t.FullName, t.Email, t.Phone,
		t.LeaseStart, t.LeaseEnd, t.MonthlyRent, t.DepositAmount, t.IsActive, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un inquilino dentro del alcance del usuario.
func (r *TenantRepo) GetByID(access scope.Access, id string) (*entity.Tenant, error) {
	clause, args := tenantScope(access, "t", 2)
	query := fmt.Sprintf(`SELECT %s FROM tenants t WHERE t.id = $1 AND %s`, tenantColumns, clause)
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(
		&t.ID, &t.UserID, &t.PropertyID, &t.FullName, &t.Email, &t.Phone,
		&t.LeaseStart, &t.LeaseEnd, &t.MonthlyRent, &t.DepositAmount, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// List lista los inquilinos visibles con paginación.
func (r *TenantRepo) List(access scope.Access, limit, offset int) ([]*entity.Tenant, error) {
	clause, args := tenantScope(access, "t", 3)
	query := fmt.Sprintf(
		`SELECT %s FROM tenants t WHERE %s ORDER BY t.created_at DESC LIMIT $1 OFFSET $2`,
		tenantColumns, clause)
	return r.scanList(query, append([]any{limit, offset}, args...)...)
}

// ListByProperty lista los inquilinos visibles de una propiedad.
func (r *TenantRepo) ListByProperty(access scope.Access, propertyID string) ([]*entity.Tenant, error) {
	clause, args := tenantScope(access, "t", 2)
	query := fmt.Sprintf(
		`SELECT %s FROM tenants t WHERE t.property_id = $1 AND %s ORDER BY t.created_at DESC`,
		tenantColumns, clause)
	return r.scanList(query, append([]any{propertyID}, args...)...)
}

// Update actualiza un inquilino dentro del conjunto gestionable.
func (r *TenantRepo) Update(access scope.Access, t *entity.Tenant) error {
	clause, args := manage(access, tenantScope, "tenants", 12)
	query := fmt.Sprintf(`
		UPDATE tenants SET property_id = $2, user_id = $3, full_name = $4, email = $5, phone = $6,
			lease_start = $7, lease_end = $8, monthly_rent = $9, deposit_amount = $10, is_active = $11
		WHERE tenants.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query,
		append([]any{t.ID, t.PropertyID, t.UserID, t.FullName, t.Email, t.Phone,
			t.LeaseStart, t.LeaseEnd, t.MonthlyRent, t.DepositAmount, t.IsActive}, args...)...,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un inquilino dentro del conjunto gestionable; la base borra
// en cascada sus pagos de renta.
func (r *TenantRepo) Delete(access scope.Access, id string) error {
	clause, args := manage(access, tenantScope, "tenants", 2)
	query := fmt.Sprintf(`DELETE FROM tenants WHERE tenants.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsManageable verifica pertenencia al conjunto gestionable del usuario.
func (r *TenantRepo) IsManageable(access scope.Access, id string) (bool, error) {
	clause, args := manage(access, tenantScope, "t", 2)
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM tenants t WHERE t.id = $1 AND %s)`, clause)
	var ok bool
	if err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(&ok); err != nil {
		return false, fmt.Errorf("check tenant scope: %w", err)
	}
	return ok, nil
}

func (r *TenantRepo) scanList(query string, args ...any) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.UserID, &t.PropertyID, &t.FullName, &t.Email, &t.Phone,
			&t.LeaseStart, &t.LeaseEnd, &t.MonthlyRent, &t.DepositAmount, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
