package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// PropertyUseCase casos de uso CRUD para propiedades.
type PropertyUseCase struct {
	repo            repository.PropertyRepository
	tenantRepo      repository.TenantRepository
	rentRepo        repository.RentPaymentRepository
	maintenanceRepo repository.MaintenanceRepository
	dashboardRepo   repository.DashboardRepository
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(
	repo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	rentRepo repository.RentPaymentRepository,
	maintenanceRepo repository.MaintenanceRepository,
	dashboardRepo repository.DashboardRepository,
) *PropertyUseCase {
	return &PropertyUseCase{
		repo:            repo,
		tenantRepo:      tenantRepo,
		rentRepo:        rentRepo,
		maintenanceRepo: maintenanceRepo,
		dashboardRepo:   dashboardRepo,
	}
}

// Create crea una propiedad. El owner es el usuario autenticado e inmutable después.
func (uc *PropertyUseCase) Create(access scope.Access, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	if in.Country == "" {
		in.Country = "Germany"
	}
	if in.PropertyType == "" {
		in.PropertyType = entity.PropertyApartment
	}
	if !entity.ValidPropertyType(in.PropertyType) {
		return nil, domain.NewValidationError("property_type", "tipo de propiedad inválido")
	}
	p := &entity.Property{
		ID:           uuid.New().String(),
		OwnerID:      access.UserID,
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		PropertyType: in.PropertyType,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// GetByID obtiene una propiedad visible para el usuario.
func (uc *PropertyUseCase) GetByID(access scope.Access, id string) (*dto.PropertyResponse, error) {
	p, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPropertyResponse(p), nil
}

// Detail obtiene la propiedad con inquilinos, pagos, mantenimiento y totales de renta.
func (uc *PropertyUseCase) Detail(ctx context.Context, access scope.Access, id string) (*dto.PropertyDetailResponse, error) {
	p, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	tenants, err := uc.tenantRepo.ListByProperty(access, id)
	if err != nil {
		return nil, err
	}
	var payments []*entity.RentPayment
	for _, t := range tenants {
		ps, err := uc.rentRepo.ListByTenant(access, t.ID)
		if err != nil {
			return nil, err
		}
		payments = append(payments, ps...)
	}
	maintenance, err := uc.maintenanceRepo.ListByProperty(access, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	totals, err := uc.dashboardRepo.PropertyTotals(ctx, access, id, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	resp := &dto.PropertyDetailResponse{
		Property:     *toPropertyResponse(p),
		Tenants:      make([]dto.TenantResponse, 0, len(tenants)),
		RentPayments: make([]dto.RentPaymentResponse, 0, len(payments)),
		Maintenance:  make([]dto.MaintenanceRequestResponse, 0, len(maintenance)),
		Totals:       toRentTotalsResponse(totals.Rent),
		ThisPeriod:   toRentTotalsResponse(totals.RentThisPeriod),
	}
	for _, t := range tenants {
		resp.Tenants = append(resp.Tenants, *toTenantResponse(t))
	}
	for _, rp := range payments {
		resp.RentPayments = append(resp.RentPayments, *toRentPaymentResponse(rp))
	}
	for _, m := range maintenance {
		resp.Maintenance = append(resp.Maintenance, *toMaintenanceResponse(m))
	}
	return resp, nil
}

// List lista las propiedades visibles para el usuario con paginación.
func (uc *PropertyUseCase) List(access scope.Access, limit, offset int) (*dto.PropertyListResponse, error) {
	list, err := uc.repo.List(access, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPropertyResponse(p))
	}
	return &dto.PropertyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una propiedad dentro del alcance gestionable. El owner no cambia.
func (uc *PropertyUseCase) Update(access scope.Access, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	p, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.PropertyType != nil {
		if !entity.ValidPropertyType(*in.PropertyType) {
			return nil, domain.NewValidationError("property_type", "tipo de propiedad inválido")
		}
		p.PropertyType = *in.PropertyType
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if err := uc.repo.Update(access, p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// Delete elimina una propiedad dentro del alcance gestionable.
// La base elimina en cascada inquilinos, pagos y solicitudes dependientes.
func (uc *PropertyUseCase) Delete(access scope.Access, id string) error {
	if !access.CanManage() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(access, id)
}

func toRentTotalsResponse(t repository.RentTotals) dto.RentTotalsResponse {
	return dto.RentTotalsResponse{
		DueCount:  t.DueCount,
		LateCount: t.LateCount,
		PaidCount: t.PaidCount,
		DueTotal:  t.DueTotal,
		LateTotal: t.LateTotal,
		PaidTotal: t.PaidTotal,
	}
}
