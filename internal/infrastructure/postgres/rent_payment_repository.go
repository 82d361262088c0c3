package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/rentschedule"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

var _ repository.RentPaymentRepository = (*RentPaymentRepo)(nil)

const rentColumns = "rp.id, rp.tenant_id, rp.period_month, rp.period_year, rp.due_date, rp.amount_due, rp.status, rp.paid_date, rp.notes, rp.created_at"

// RentPaymentRepo implementación del puerto RentPaymentRepository sobre
// PostgreSQL (usable con pool o tx).
type RentPaymentRepo struct {
	q Querier
}

// NewRentPaymentRepository construye el adaptador de persistencia para pagos de renta.
func NewRentPaymentRepository(q Querier) *RentPaymentRepo {
	return &RentPaymentRepo{q: q}
}

// Create persiste un pago; el constraint único sobre (tenant, mes, año)
// convierte un período repetido en domain.ErrDuplicate.
func (r *RentPaymentRepo) Create(rp *entity.RentPayment) error {
	query := `
		INSERT INTO rent_payments (id, tenant_id, period_month, period_year, due_date, amount_due, status, paid_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rp.ID, rp.TenantID, rp.PeriodMonth, rp.PeriodYear, rp.DueDate,
		rp.AmountDue, rp.Status, rp.PaidDate, rp.Notes, rp.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rent payment: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta solo si el período no existe: ON CONFLICT DO NOTHING
// respeta registros previos (incluidos PAID y LATE) y hace idempotente la
// generación del calendario.
func (r *RentPaymentRepo) CreateIfAbsent(rp *entity.RentPayment) error {
	query := `
		INSERT INTO rent_payments (id, tenant_id, period_month, period_year, due_date, amount_due, status, paid_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id, period_month, period_year) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		rp.ID, rp.TenantID, rp.PeriodMonth, rp.PeriodYear, rp.DueDate,
		rp.AmountDue, rp.Status, rp.PaidDate, rp.Notes, rp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rent payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago dentro del alcance del usuario.
func (r *RentPaymentRepo) GetByID(access scope.Access, id string) (*entity.RentPayment, error) {
	clause, args := rentScope(access, "rp", 2)
	query := fmt.Sprintf(`SELECT %s FROM rent_payments rp WHERE rp.id = $1 AND %s`, rentColumns, clause)
	var rp entity.RentPayment
	err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(
		&rp.ID, &rp.TenantID, &rp.PeriodMonth, &rp.PeriodYear, &rp.DueDate,
		&rp.AmountDue, &rp.Status, &rp.PaidDate, &rp.Notes, &rp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rent payment: %w", err)
	}
	return &rp, nil
}

// List lista los pagos visibles, más recientes primero.
func (r *RentPaymentRepo) List(access scope.Access, limit, offset int) ([]*entity.RentPayment, error) {
	clause, args := rentScope(access, "rp", 3)
	query := fmt.Sprintf(
		`SELECT %s FROM rent_payments rp WHERE %s
		 ORDER BY rp.period_year DESC, rp.period_month DESC, rp.due_date LIMIT $1 OFFSET $2`,
		rentColumns, clause)
	return r.scanList(query, append([]any{limit, offset}, args...)...)
}

// ListByTenant lista los pagos visibles de un inquilino.
func (r *RentPaymentRepo) ListByTenant(access scope.Access, tenantID string) ([]*entity.RentPayment, error) {
	clause, args := rentScope(access, "rp", 2)
	query := fmt.Sprintf(
		`SELECT %s FROM rent_payments rp WHERE rp.tenant_id = $1 AND %s
		 ORDER BY rp.period_year, rp.period_month`,
		rentColumns, clause)
	return r.scanList(query, append([]any{tenantID}, args...)...)
}

// Update actualiza un pago dentro del conjunto gestionable. Un cambio de
// período que choque con otro registro retorna ErrDuplicate.
func (r *RentPaymentRepo) Update(access scope.Access, rp *entity.RentPayment) error {
	clause, args := manage(access, rentScope, "rent_payments", 10)
	query := fmt.Sprintf(`
		UPDATE rent_payments SET tenant_id = $2, period_month = $3, period_year = $4,
			due_date = $5, amount_due = $6, status = $7, paid_date = $8, notes = $9
		WHERE rent_payments.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query,
		append([]any{rp.ID, rp.TenantID, rp.PeriodMonth, rp.PeriodYear,
			rp.DueDate, rp.AmountDue, rp.Status, rp.PaidDate, rp.Notes}, args...)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update rent payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pago dentro del conjunto gestionable.
func (r *RentPaymentRepo) Delete(access scope.Access, id string) error {
	clause, args := manage(access, rentScope, "rent_payments", 2)
	query := fmt.Sprintf(`DELETE FROM rent_payments WHERE rent_payments.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete rent payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountLateCandidates cuenta los pagos DUE ya vencidos (modo dry-run del job).
func (r *RentPaymentRepo) CountLateCandidates(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM rent_payments WHERE status = $1 AND due_date < $2`,
		entity.RentDue, rentschedule.DayOf(today),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count late candidates: %w", err)
	}
	return n, nil
}

// MarkLate marca como LATE los pagos DUE ya vencidos. Idempotente: una segunda
// corrida en el día no encuentra filas DUE que actualizar.
func (r *RentPaymentRepo) MarkLate(ctx context.Context, today time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE rent_payments SET status = $1 WHERE status = $2 AND due_date < $3`,
		entity.RentLate, entity.RentDue, rentschedule.DayOf(today),
	)
	if err != nil {
		return 0, fmt.Errorf("mark late: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *RentPaymentRepo) scanList(query string, args ...any) ([]*entity.RentPayment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rent payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.RentPayment
	for rows.Next() {
		var rp entity.RentPayment
		if err := rows.Scan(&rp.ID, &rp.TenantID, &rp.PeriodMonth, &rp.PeriodYear, &rp.DueDate,
			&rp.AmountDue, &rp.Status, &rp.PaidDate, &rp.Notes, &rp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rent payment: %w", err)
		}
		list = append(list, &rp)
	}
	return list, rows.Err()
}
