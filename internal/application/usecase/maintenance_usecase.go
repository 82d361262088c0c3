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

// MaintenanceUseCase casos de uso para solicitudes de mantenimiento.
type MaintenanceUseCase struct {
	repo         repository.MaintenanceRepository
	propertyRepo repository.PropertyRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, propertyRepo repository.PropertyRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, propertyRepo: propertyRepo}
}

// Create crea una solicitud. La propiedad debe estar dentro del conjunto
// gestionable; created_by queda fijado al usuario autenticado.
func (uc *MaintenanceUseCase) Create(access scope.Access, in dto.CreateMaintenanceRequest) (*dto.MaintenanceRequestResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	ok, err := uc.propertyRepo.IsManageable(access, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewValidationError("property_id", "selección de propiedad inválida")
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, domain.NewValidationError("priority", "prioridad inválida")
	}

	m := &entity.MaintenanceRequest{
		ID:          uuid.New().String(),
		PropertyID:  in.PropertyID,
		CreatedBy:   access.UserID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      entity.MaintenanceOpen,
		VendorName:  in.VendorName,
		CreatedAt:   time.Now(),
	}
	if in.CostEstimate != nil {
		m.CostEstimate = decimal.NullDecimal{Decimal: *in.CostEstimate, Valid: true}
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// GetByID obtiene una solicitud visible para el usuario.
func (uc *MaintenanceUseCase) GetByID(access scope.Access, id string) (*dto.MaintenanceRequestResponse, error) {
	m, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(m), nil
}

// List lista las solicitudes visibles con paginación.
func (uc *MaintenanceUseCase) List(access scope.Access, limit, offset int) (*dto.MaintenanceListResponse, error) {
	list, err := uc.repo.List(access, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceRequestResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return &dto.MaintenanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una solicitud. CreatedBy se conserva siempre.
func (uc *MaintenanceUseCase) Update(access scope.Access, id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceRequestResponse, error) {
	if !access.CanManage() {
		return nil, domain.ErrForbidden
	}
	m, err := uc.repo.GetByID(access, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.PropertyID != nil && *in.PropertyID != m.PropertyID {
		ok, err := uc.propertyRepo.IsManageable(access, *in.PropertyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.NewValidationError("property_id", "selección de propiedad inválida")
		}
		m.PropertyID = *in.PropertyID
	}
	if in.Title != nil {
		m.Title = *in.Title
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.NewValidationError("priority", "prioridad inválida")
		}
		m.Priority = *in.Priority
	}
	if in.Status != nil {
		if !entity.ValidMaintenanceStatus(*in.Status) {
			return nil, domain.NewValidationError("status", "estado inválido")
		}
		m.Status = *in.Status
	}
	if in.VendorName != nil {
		m.VendorName = *in.VendorName
	}
	if in.CostEstimate != nil {
		m.CostEstimate = decimal.NullDecimal{Decimal: *in.CostEstimate, Valid: true}
	}
	if in.ResolvedAt != nil {
		if *in.ResolvedAt == "" {
			m.ResolvedAt = nil
		} else {
			d, err := parseDate("resolved_at", *in.ResolvedAt)
			if err != nil {
				return nil, err
			}
			m.ResolvedAt = &d
		}
	}
	if err := uc.repo.Update(access, m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// Delete elimina una solicitud dentro del alcance gestionable.
func (uc *MaintenanceUseCase) Delete(access scope.Access, id string) error {
	if !access.CanManage() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(access, id)
}
