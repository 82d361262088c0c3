package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// RentUseCase casos de uso para pagos de renta individuales.
// El alta masiva al crear un inquilino vive en TenantUseCase.
type RentUseCase struct {
	repo       repository.RentPaymentRepository
	tenantRepo repository.TenantRepository
}

// NewRentUseCase construye el caso de uso.
func NewRentUseCase(repo repository.RentPaymentRepository, tenantRepo repository.TenantRepository) *RentUseCase {
	return &RentUseCase{repo: repo, tenantRepo: tenantRepo}
}

// Create crea un pago individual. El inquilino lo elige el cliente y debe estar
// dentro del conjunto gestionable; un período repetido retorna ErrDuplicate.
func (uc *RentUseCase) Create(access scope.Access, in dto.CreateRentPaymentRequest) (*dto.RentPaymentResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	ok, err := uc.tenantRepo.IsManageable(access, in.TenantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewValidationError("tenant_id", "selección de inquilino inválida")
	}
	if in.PeriodMonth < 1 || in.PeriodMonth > 12 {
		return nil, domain.NewValidationError("period_month", "el mes debe estar entre 1 y 12")
	}
	if !in.AmountDue.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("amount_due", "el monto debe ser mayor que cero")
	}
	if in.Status == "" {
		in.Status = entity.RentDue
	}
	if !entity.ValidRentStatus(in.Status) {
		return nil, domain.NewValidationError("status", "estado de pago inválido")
	}
	dueDate, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	var paidDate *time.Time
	if in.PaidDate != "" {
		d, err := parseDate("paid_date", in.PaidDate)
		if err != nil {
			return nil, err
		}
		paidDate = &d
	}

	rp := &entity.RentPayment{
		ID:          uuid.New().String(),
		TenantID:    in.TenantID,
		PeriodMonth: in.PeriodMonth,
		PeriodYear:  in.PeriodYear,
		DueDate:     dueDate,
		AmountDue:   in.AmountDue,
		Status:      in.Status,
		PaidDate:    paidDate,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(rp); err != nil {
		return nil, err
	}
	return toRentPaymentResponse(rp), nil
}

// GetByID obtiene un pago visible para el usuario.
func (uc *RentUseCase) GetByID(access scope.Access, id string) (*dto.RentPaymentResponse, error) {
	rp, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, domain.ErrNotFound
	}
	return toRentPaymentResponse(rp), nil
}

// List lista los pagos visibles con paginación.
func (uc *RentUseCase) List(access scope.Access, limit, offset int) (*dto.RentPaymentListResponse, error) {
	list, err := uc.repo.List(access, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RentPaymentResponse, 0, len(list))
	for _, rp := range list {
		items = append(items, *toRentPaymentResponse(rp))
	}
	return &dto.RentPaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un pago. Las transiciones de estado son permisivas a propósito:
// el modelo no prohíbe salir de PAID, solo lo registra tal cual.
func (uc *RentUseCase) Update(access scope.Access, id string, in dto.UpdateRentPaymentRequest) (*dto.RentPaymentResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	rp, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, domain.ErrNotFound
	}
	if in.TenantID != nil && *in.TenantID != rp.TenantID {
		ok, err := uc.tenantRepo.IsManageable(access, *in.TenantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.NewValidationError("tenant_id", "selección de inquilino inválida")
		}
		rp.TenantID = *in.TenantID
	}
	if in.PeriodMonth != nil {
		if *in.PeriodMonth < 1 || *in.PeriodMonth > 12 {
			return nil, domain.NewValidationError("period_month", "el mes debe estar entre 1 y 12")
		}
		rp.PeriodMonth = *in.PeriodMonth
	}
	if in.PeriodYear != nil {
		rp.PeriodYear = *in.PeriodYear
	}
	if in.DueDate != nil {
		d, err := parseDate("due_date", *in.DueDate)
		if err != nil {
			return nil, err
		}
		rp.DueDate = d
	}
	if in.AmountDue != nil {
		if !in.AmountDue.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError("amount_due", "el monto debe ser mayor que cero")
		}
		rp.AmountDue = *in.AmountDue
	}
	if in.Status != nil {
		if !entity.ValidRentStatus(*in.Status) {
			return nil, domain.NewValidationError("status", "estado de pago inválido")
		}
		rp.Status = *in.Status
	}
	if in.PaidDate != nil {
		if *in.PaidDate == "" {
			rp.PaidDate = nil
		} else {
			d, err := parseDate("paid_date", *in.PaidDate)
			if err != nil {
				return nil, err
			}
			rp.PaidDate = &d
		}
	}
	if in.Notes != nil {
		rp.Notes = *in.Notes
	}
	if err := uc.repo.Update(access, rp); err != nil {
		return nil, err
	}
	return toRentPaymentResponse(rp), nil
}

// Delete elimina un pago dentro del alcance gestionable.
func (uc *RentUseCase) Delete(access scope.Access, id string) error {
	if !access.CanManage() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(access, id)
}
