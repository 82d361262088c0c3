package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/rentschedule"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// TenantUseCase casos de uso para inquilinos. El alta genera además el
// calendario inicial de pagos dentro de una sola transacción.
type TenantUseCase struct {
	txRunner     TxRunner
	repo         repository.TenantRepository
	propertyRepo repository.PropertyRepository
	rentRepo     repository.RentPaymentRepository
	userRepo     repository.UserRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(
	txRunner TxRunner,
	repo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	rentRepo repository.RentPaymentRepository,
	userRepo repository.UserRepository,
) *TenantUseCase {
	return &TenantUseCase{
		txRunner:     txRunner,
		repo:         repo,
		propertyRepo: propertyRepo,
		rentRepo:     rentRepo,
		userRepo:     userRepo,
	}
}

// userExists valida que un user_id provisto por el cliente corresponda a un
// usuario real, para responder con un error de campo en vez de dejar que la
// violación de FK reviente la transacción.
func (uc *TenantUseCase) userExists(id string) error {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.NewValidationError("user_id", "selección de usuario inválida")
	}
	return nil
}

// Create crea un inquilino y materializa sus primeros seis pagos de renta en
// estado DUE, todo en una transacción: si cualquier inserción falla no queda
// ni el inquilino ni ningún pago parcial.
func (uc *TenantUseCase) Create(ctx context.Context, access scope.Access, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	// La propiedad la elige el cliente: verificar que esté dentro del conjunto
	// gestionable antes de escribir nada.
	ok, err := uc.propertyRepo.IsManageable(access, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewValidationError("property_id", "selección de propiedad inválida")
	}

	leaseStart, err := parseDate("lease_start", in.LeaseStart)
	if err != nil {
		return nil, err
	}
	var leaseEnd *time.Time
	if in.LeaseEnd != "" {
		t, err := parseDate("lease_end", in.LeaseEnd)
		if err != nil {
			return nil, err
		}
		leaseEnd = &t
	}
	if !in.MonthlyRent.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("monthly_rent", "la renta mensual debe ser mayor que cero")
	}

	tenant := &entity.Tenant{
		ID:          uuid.New().String(),
		PropertyID:  in.PropertyID,
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		LeaseStart:  leaseStart,
		LeaseEnd:    leaseEnd,
		MonthlyRent: in.MonthlyRent,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if in.UserID != "" {
		if err := uc.userExists(in.UserID); err != nil {
			return nil, err
		}
		userID := in.UserID
		tenant.UserID = &userID
	}
	if in.DepositAmount != nil {
		tenant.DepositAmount = decimal.NullDecimal{Decimal: *in.DepositAmount, Valid: true}
	}
	if in.IsActive != nil {
		tenant.IsActive = *in.IsActive
	}

	payments := rentschedule.Build(tenant, time.Now(), rentschedule.DefaultMonths)

	err = uc.txRunner.Run(ctx, func(tenants repository.TenantRepository, rents repository.RentPaymentRepository) error {
		if err := tenants.Create(tenant); err != nil {
			return err
		}
		for _, rp := range payments {
			if err := rents.CreateIfAbsent(rp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Un solo error agregado para el llamador; el rollback ya dejó la base intacta.
		return nil, fmt.Errorf("%w: %v", domain.ErrTransaction, err)
	}
	return toTenantResponse(tenant), nil
}

// GenerateSchedule regenera el calendario de pagos de un inquilino existente a
// partir del mes actual. Idempotente: los períodos ya existentes no se tocan,
// incluidos los ya pagados o atrasados.
func (uc *TenantUseCase) GenerateSchedule(ctx context.Context, access scope.Access, tenantID string) (*dto.ScheduleResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	tenant, err := uc.repo.GetByID(access, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}

	payments := rentschedule.Build(tenant, time.Now(), rentschedule.DefaultMonths)
	err = uc.txRunner.Run(ctx, func(_ repository.TenantRepository, rents repository.RentPaymentRepository) error {
		for _, rp := range payments {
			if err := rents.CreateIfAbsent(rp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransaction, err)
	}

	current, err := uc.rentRepo.ListByTenant(access, tenantID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ScheduleResponse{TenantID: tenantID, Payments: make([]dto.RentPaymentResponse, 0, len(current))}
	for _, rp := range current {
		resp.Payments = append(resp.Payments, *toRentPaymentResponse(rp))
	}
	return resp, nil
}

// GetByID obtiene un inquilino visible para el usuario.
func (uc *TenantUseCase) GetByID(access scope.Access, id string) (*dto.TenantResponse, error) {
	t, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(t), nil
}

// List lista los inquilinos visibles con paginación.
func (uc *TenantUseCase) List(access scope.Access, limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.repo.List(access, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un inquilino. Si el cliente cambia la propiedad, la nueva debe
// estar dentro de su conjunto gestionable.
func (uc *TenantUseCase) Update(access scope.Access, id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	t, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.PropertyID != nil && *in.PropertyID != t.PropertyID {
		ok, err := uc.propertyRepo.IsManageable(access, *in.PropertyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.NewValidationError("property_id", "selección de propiedad inválida")
		}
		t.PropertyID = *in.PropertyID
	}
	if in.UserID != nil {
		if *in.UserID == "" {
			t.UserID = nil
		} else {
			if err := uc.userExists(*in.UserID); err != nil {
				return nil, err
			}
			userID := *in.UserID
			t.UserID = &userID
		}
	}
	if in.FullName != nil {
		t.FullName = *in.FullName
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.LeaseStart != nil {
		d, err := parseDate("lease_start", *in.LeaseStart)
		if err != nil {
			return nil, err
		}
		t.LeaseStart = d
	}
	if in.LeaseEnd != nil {
		if *in.LeaseEnd == "" {
			t.LeaseEnd = nil
		} else {
			d, err := parseDate("lease_end", *in.LeaseEnd)
			if err != nil {
				return nil, err
			}
			t.LeaseEnd = &d
		}
	}
	if in.MonthlyRent != nil {
		if !in.MonthlyRent.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError("monthly_rent", "la renta mensual debe ser mayor que cero")
		}
		t.MonthlyRent = *in.MonthlyRent
	}
	if in.DepositAmount != nil {
		t.DepositAmount = decimal.NullDecimal{Decimal: *in.DepositAmount, Valid: true}
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(access, t); err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// Delete elimina un inquilino dentro del alcance gestionable.
// La base elimina en cascada sus pagos de renta.
func (uc *TenantUseCase) Delete(access scope.Access, id string) error {
	if !access.CanManage() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(access, id)
}
