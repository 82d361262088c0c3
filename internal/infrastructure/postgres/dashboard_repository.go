package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// Ensure DashboardRepo implements repository.DashboardRepository.
var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo resuelve los agregados del panel directamente en SQL,
// aplicando la misma matriz de alcance que los repositorios de entidades.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el repositorio con el pool o una transacción.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) Summary(ctx context.Context, access scope.Access, month, year int) (*repository.DashboardSummary, error) {
	var s repository.DashboardSummary

	clause, args := propertyScope(access, "p", 1)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM properties p WHERE %s`, clause)
	if err := r.q.QueryRow(ctx, query, args...).Scan(&s.PropertiesCount); err != nil {
		return nil, fmt.Errorf("error al contar propiedades: %w", err)
	}

	clause, args = tenantScope(access, "t", 1)
	query = fmt.Sprintf(`SELECT COUNT(*) FROM tenants t WHERE t.is_active AND %s`, clause)
	if err := r.q.QueryRow(ctx, query, args...).Scan(&s.ActiveTenantsCount); err != nil {
		return nil, fmt.Errorf("error al contar inquilinos activos: %w", err)
	}

	rent, err := r.rentTotals(ctx, access, "", nil)
	if err != nil {
		return nil, err
	}
	s.Rent = rent

	period, err := r.rentTotals(ctx, access,
		"rp.period_month = $1 AND rp.period_year = $2", []any{month, year})
	if err != nil {
		return nil, err
	}
	s.RentThisPeriod = period

	clause, args = maintenanceScope(access, "m", 1)
	query = fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE m.status = 'OPEN'),
			COUNT(*) FILTER (WHERE m.status = 'IN_PROGRESS'),
			COUNT(*) FILTER (WHERE m.status = 'OPEN' AND m.priority = 'URGENT'),
			COUNT(*) FILTER (WHERE m.status = 'OPEN' AND m.priority = 'HIGH')
		FROM maintenance_requests m
		WHERE %s`, clause)
	err = r.q.QueryRow(ctx, query, args...).Scan(
		&s.OpenMaintenance, &s.InProgressCount, &s.UrgentOpenCount, &s.HighOpenCount)
	if err != nil {
		return nil, fmt.Errorf("error al agregar mantenimiento: %w", err)
	}

	return &s, nil
}

func (r *DashboardRepo) PropertySummaries(ctx context.Context, access scope.Access) ([]repository.PropertySummary, error) {
	clause, args := propertyScope(access, "p", 1)
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.city,
			(SELECT COUNT(*) FROM tenants t WHERE t.property_id = p.id AND t.is_active),
			(SELECT COUNT(*) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'DUE'),
			(SELECT COUNT(*) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'LATE'),
			(SELECT COUNT(*) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'PAID'),
			(SELECT COALESCE(SUM(rp.amount_due), 0) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'DUE'),
			(SELECT COALESCE(SUM(rp.amount_due), 0) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'LATE'),
			(SELECT COALESCE(SUM(rp.amount_due), 0) FROM rent_payments rp JOIN tenants t ON t.id = rp.tenant_id
				WHERE t.property_id = p.id AND rp.status = 'PAID'),
			(SELECT COUNT(*) FROM maintenance_requests m
				WHERE m.property_id = p.id AND m.status = 'OPEN'),
			(SELECT COUNT(*) FROM maintenance_requests m
				WHERE m.property_id = p.id AND m.status = 'OPEN' AND m.priority = 'URGENT')
		FROM properties p
		WHERE %s
		ORDER BY p.name`, clause)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al consultar resumen por propiedad: %w", err)
	}
	defer rows.Close()

	var summaries []repository.PropertySummary
	for rows.Next() {
		var ps repository.PropertySummary
		err := rows.Scan(
			&ps.PropertyID, &ps.Name, &ps.City,
			&ps.ActiveTenants,
			&ps.Rent.DueCount, &ps.Rent.LateCount, &ps.Rent.PaidCount,
			&ps.Rent.DueTotal, &ps.Rent.LateTotal, &ps.Rent.PaidTotal,
			&ps.OpenMaintenance, &ps.UrgentOpenCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear resumen de propiedad: %w", err)
		}
		summaries = append(summaries, ps)
	}
	return summaries, rows.Err()
}

func (r *DashboardRepo) PropertyTotals(ctx context.Context, access scope.Access, propertyID string, month, year int) (*repository.PropertyTotals, error) {
	byProperty := "rp.tenant_id IN (SELECT id FROM tenants WHERE property_id = $1)"

	rent, err := r.rentTotals(ctx, access, byProperty, []any{propertyID})
	if err != nil {
		return nil, err
	}
	period, err := r.rentTotals(ctx, access,
		byProperty+" AND rp.period_month = $2 AND rp.period_year = $3",
		[]any{propertyID, month, year})
	if err != nil {
		return nil, err
	}
	return &repository.PropertyTotals{Rent: rent, RentThisPeriod: period}, nil
}

// rentTotals agrega conteos y sumas por estado sobre rent_payments, con un
// filtro adicional opcional cuyos placeholders preceden a los del alcance.
func (r *DashboardRepo) rentTotals(ctx context.Context, access scope.Access, extra string, extraArgs []any) (repository.RentTotals, error) {
	clause, args := rentScope(access, "rp", len(extraArgs)+1)
	where := clause
	if extra != "" {
		where = extra + " AND " + clause
	}
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE rp.status = 'DUE'),
			COUNT(*) FILTER (WHERE rp.status = 'LATE'),
			COUNT(*) FILTER (WHERE rp.status = 'PAID'),
			COALESCE(SUM(rp.amount_due) FILTER (WHERE rp.status = 'DUE'), 0),
			COALESCE(SUM(rp.amount_due) FILTER (WHERE rp.status = 'LATE'), 0),
			COALESCE(SUM(rp.amount_due) FILTER (WHERE rp.status = 'PAID'), 0)
		FROM rent_payments rp
		WHERE %s`, where)

	var t repository.RentTotals
	err := r.q.QueryRow(ctx, query, append(extraArgs, args...)...).Scan(
		&t.DueCount, &t.LateCount, &t.PaidCount,
		&t.DueTotal, &t.LateTotal, &t.PaidTotal,
	)
	if err != nil {
		return repository.RentTotals{}, fmt.Errorf("error al agregar pagos de renta: %w", err)
	}
	return t, nil
}
