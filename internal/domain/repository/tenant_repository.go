package repository

import (
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(t *entity.Tenant) error
	GetByID(access scope.Access, id string) (*entity.Tenant, error)
	List(access scope.Access, limit, offset int) ([]*entity.Tenant, error)
	ListByProperty(access scope.Access, propertyID string) ([]*entity.Tenant, error)
	Update(access scope.Access, t *entity.Tenant) error
	Delete(access scope.Access, id string) error
	IsManageable(access scope.Access, id string) (bool, error)
}
