package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

const propertyColumns = "p.id, p.owner_id, p.name, p.address, p.city, p.country, p.property_type, p.notes, p.created_at"

// PropertyRepo implementación del puerto PropertyRepository sobre PostgreSQL
// (usable con pool o tx). Todas las lecturas aplican el filtro de alcance en
// la consulta misma.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador de persistencia para propiedades.
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// Create persiste una nueva propiedad. El owner ya viene fijado por el caso de uso.
func (r *PropertyRepo) Create(p *entity.Property) error {
	query := `
		INSERT INTO properties (id, owner_id, name, address, city, country, property_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.OwnerID, p.Name, p.Address, p.City, p.Country, p.PropertyType, p.Notes, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad dentro del alcance del usuario; fuera de
// alcance se comporta igual que inexistente.
func (r *PropertyRepo) GetByID(access scope.Access, id string) (*entity.Property, error) {
	clause, args := propertyScope(access, "p", 2)
	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.id = $1 AND %s`, propertyColumns, clause)
	var p entity.Property
	err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.Country, &p.PropertyType, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// List lista las propiedades visibles con paginación.
func (r *PropertyRepo) List(access scope.Access, limit, offset int) ([]*entity.Property, error) {
	clause, args := propertyScope(access, "p", 3)
	query := fmt.Sprintf(
		`SELECT %s FROM properties p WHERE %s ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`,
		propertyColumns, clause)
	rows, err := r.q.Query(context.Background(), query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.Country,
			&p.PropertyType, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una propiedad dentro del conjunto gestionable. El owner no
// se toca. Cero filas afectadas significa fuera de alcance o inexistente.
func (r *PropertyRepo) Update(access scope.Access, p *entity.Property) error {
	clause, args := manage(access, propertyScope, "properties", 8)
	query := fmt.Sprintf(`
		UPDATE properties SET name = $2, address = $3, city = $4, country = $5, property_type = $6, notes = $7
		WHERE properties.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query,
		append([]any{p.ID, p.Name, p.Address, p.City, p.Country, p.PropertyType, p.Notes}, args...)...,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una propiedad dentro del conjunto gestionable; la base borra
// en cascada inquilinos, pagos y solicitudes.
func (r *PropertyRepo) Delete(access scope.Access, id string) error {
	clause, args := manage(access, propertyScope, "properties", 2)
	query := fmt.Sprintf(`DELETE FROM properties WHERE properties.id = $1 AND %s`, clause)
	cmd, err := r.q.Exec(context.Background(), query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsManageable verifica pertenencia al conjunto gestionable del usuario.
func (r *PropertyRepo) IsManageable(access scope.Access, id string) (bool, error) {
	clause, args := manage(access, propertyScope, "p", 2)
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM properties p WHERE p.id = $1 AND %s)`, clause)
	var ok bool
	if err := r.q.QueryRow(context.Background(), query, append([]any{id}, args...)...).Scan(&ok); err != nil {
		return false, fmt.Errorf("check property scope: %w", err)
	}
	return ok, nil
}
