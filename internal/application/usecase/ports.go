package usecase

import (
	"context"

	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// La creación de inquilino y su calendario inicial de pagos debe ser atómica:
// o se escribe todo o no queda nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tenants repository.TenantRepository,
		rents repository.RentPaymentRepository,
	) error) error
}
