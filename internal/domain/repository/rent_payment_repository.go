package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// RentPaymentRepository define el puerto de persistencia para RentPayment.
type RentPaymentRepository interface {
	// Create inserta un pago; retorna domain.ErrDuplicate si ya existe un
	// registro para (tenant, mes, año).
	Create(rp *entity.RentPayment) error
	// CreateIfAbsent inserta solo si el período no existe todavía (upsert-si-ausente);
	// es la base de la generación idempotente del calendario.
	CreateIfAbsent(rp *entity.RentPayment) error
	GetByID(access scope.Access, id string) (*entity.RentPayment, error)
	List(access scope.Access, limit, offset int) ([]*entity.RentPayment, error)
	ListByTenant(access scope.Access, tenantID string) ([]*entity.RentPayment, error)
	Update(access scope.Access, rp *entity.RentPayment) error
	Delete(access scope.Access, id string) error

	// Operaciones batch sin alcance, reservadas al job operacional de rentctl.
	CountLateCandidates(ctx context.Context, today time.Time) (int64, error)
	MarkLate(ctx context.Context, today time.Time) (int64, error)
}
