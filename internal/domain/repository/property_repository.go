package repository

import (
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// PropertyRepository define el puerto de persistencia para Property.
// Las lecturas y mutaciones reciben el Access del usuario y aplican su alcance
// en la propia consulta: un registro ajeno se comporta como inexistente.
type PropertyRepository interface {
	Create(p *entity.Property) error
	GetByID(access scope.Access, id string) (*entity.Property, error)
	List(access scope.Access, limit, offset int) ([]*entity.Property, error)
	Update(access scope.Access, p *entity.Property) error
	Delete(access scope.Access, id string) error
	// IsManageable verifica que la propiedad esté dentro del conjunto
	// gestionable del usuario antes de usarla como FK elegida por el cliente.
	IsManageable(access scope.Access, id string) (bool, error)
}
