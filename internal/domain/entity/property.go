package entity

import "time"

// Tipos válidos de propiedad.
const (
	PropertyApartment  = "APARTMENT"
	PropertyHouse      = "HOUSE"
	PropertyRoom       = "ROOM"
	PropertyCommercial = "COMMERCIAL"
)

// ValidPropertyType indica si el tipo pertenece al conjunto cerrado.
func ValidPropertyType(s string) bool {
	switch s {
	case PropertyApartment, PropertyHouse, PropertyRoom, PropertyCommercial:
		return true
	}
	return false
}

// Property representa un inmueble. OwnerID es el landlord que lo creó y es
// inmutable después de la creación; al borrarla se eliminan en cascada sus
// inquilinos y solicitudes de mantenimiento.
type Property struct {
	ID           string
	OwnerID      string
	Name         string
	Address      string
	City         string
	Country      string
	PropertyType string
	Notes        string
	CreatedAt    time.Time
}
