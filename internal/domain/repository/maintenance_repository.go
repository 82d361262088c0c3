package repository

import (
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// MaintenanceRepository define el puerto de persistencia para MaintenanceRequest.
type MaintenanceRepository interface {
	Create(m *entity.MaintenanceRequest) error
	GetByID(access scope.Access, id string) (*entity.MaintenanceRequest, error)
	List(access scope.Access, limit, offset int) ([]*entity.MaintenanceRequest, error)
	ListByProperty(access scope.Access, propertyID string) ([]*entity.MaintenanceRequest, error)
	Update(access scope.Access, m *entity.MaintenanceRequest) error
	Delete(access scope.Access, id string) error
}
