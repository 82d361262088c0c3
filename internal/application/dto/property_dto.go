package dto

import "time"

// CreatePropertyRequest entrada para crear una propiedad. El owner se toma del
// usuario autenticado, nunca del cuerpo.
type CreatePropertyRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required,max=80"`
	Country      string `json:"country" validate:"omitempty,max=80"`
	PropertyType string `json:"property_type" validate:"omitempty,oneof=APARTMENT HOUSE ROOM COMMERCIAL"`
	Notes        string `json:"notes"`
}

// UpdatePropertyRequest entrada para editar una propiedad (campos opcionales).
// El owner es inmutable y no aparece aquí.
type UpdatePropertyRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	PropertyType *string `json:"property_type"`
	Notes        *string `json:"notes"`
}

// PropertyResponse salida de una propiedad.
type PropertyResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	PropertyType string    `json:"property_type"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// PropertyListResponse listado paginado de propiedades.
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PropertyDetailResponse detalle de una propiedad con sus dependientes y totales.
type PropertyDetailResponse struct {
	Property     PropertyResponse             `json:"property"`
	Tenants      []TenantResponse             `json:"tenants"`
	RentPayments []RentPaymentResponse        `json:"rent_payments"`
	Maintenance  []MaintenanceRequestResponse `json:"maintenance"`
	Totals       RentTotalsResponse           `json:"totals"`
	ThisPeriod   RentTotalsResponse           `json:"this_period"`
}
