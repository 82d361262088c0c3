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

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

const maintenanceColumns = "m.id, m.property_id, m.created_by, m.title, m.description, m.priority, m.status, m.vendor_name, m.cost_estimate, m.created_at, m.resolved_at"

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre
// PostgreSQL (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para solicitudes.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// Create persiste una nueva solicitud de mantenimiento.
func (r *MaintenanceRepo) Create(m *entity.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, property_id, created_by, title, description, priority, status, vendor_name, cost_estimate, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.PropertyID, m.CreatedBy, m.Title, m.Description, m.Priority, m.Status,
		m.VendorName, m.CostEstimate, m.CreatedAt, m.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud dentro del alcance del usuario.
func (r *MaintenanceRepo) GetByID(access scope.Access, id string) (*entity.MaintenanceRequest, error) {
	clause, args := maintenanceScope(access, "m", 2)
	query := fmt.Sprintf(`SELECT %s FROM maintenance_requests m WHERE m.id = $1 AND %s`, maintenanceColumns, clause)
	var m entity.MaintenanceRequest
	err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(
		&m.ID, &m.PropertyID, &m.CreatedBy, &m.Title, &m.Description, &m.Priority, &m.Status,
		&m.VendorName, &m.CostEstimate, &m.CreatedAt, &m.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	return &m, nil
}

// List lista las solicitudes visibles con paginación.
func (r *MaintenanceRepo) List(access scope.Access, limit, offset int) ([]*entity.MaintenanceRequest, error) {
	clause, args := maintenanceScope(access, "m", 3)
	query := fmt.Sprintf(
		`SELECT %s FROM maintenance_requests m WHERE %s ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`,
		maintenanceColumns, clause)
	return r.scanList(query, append([]any{limit, offset}, args...)...)
}

// ListByProperty lista las solicitudes visibles de una propiedad.
func (r *MaintenanceRepo) ListByProperty(access scope.Access, propertyID string) ([]*entity.MaintenanceRequest, error) {
	clause, args := maintenanceScope(access, "m", 2)
	query := fmt.Sprintf(
		`SELECT %s FROM maintenance_requests m WHERE m.property_id = $1 AND %s ORDER BY m.created_at DESC`,
		maintenanceColumns, clause)
	return r.scanList(query, append([]any{propertyID}, args...)...)
}

// Update actualiza una solicitud dentro del conjunto gestionable. created_by
// no se toca nunca.
func (r *MaintenanceRepo) Update(access scope.Access, m *entity.MaintenanceRequest) error {
	clause, args := manage(access, maintenanceScope, "maintenance_requests", 10)
	query := fmt.Sprintf(`
		UPDATE maintenance_requests SET property_id = $2, title = $3, description = $4,
			priority = $5, status = $6, vendor_name = $7, cost_estimate = $8, resolved_at = $9
		WHERE maintenance_requests.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query,
		append([]any{m.ID, m.PropertyID, m.Title, m.Description,
			m.Priority, m.Status, m.VendorName, m.CostEstimate, m.ResolvedAt}, args...)...,
	)
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una solicitud dentro del conjunto gestionable.
func (r *MaintenanceRepo) Delete(access scope.Access, id string) error {
	clause, args := manage(access, maintenanceScope, "maintenance_requests", 2)
	query := fmt.Sprintf(`DELETE FROM maintenance_requests WHERE maintenance_requests.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete maintenance request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepo) scanList(query string, args ...any) ([]*entity.MaintenanceRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceRequest
	for rows.Next() {
		var m entity.MaintenanceRequest
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.CreatedBy, &m.Title, &m.Description,
			&m.Priority, &m.Status, &m.VendorName, &m.CostEstimate, &m.CreatedAt, &m.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
