package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest entrada para crear una solicitud de mantenimiento.
// PropertyID debe estar dentro del alcance gestionable; created_by se toma del
// usuario autenticado.
type CreateMaintenanceRequest struct {
	PropertyID   string           `json:"property_id" validate:"required,uuid"`
	Title        string           `json:"title" validate:"required,max=120"`
	Description  string           `json:"description" validate:"required"`
	Priority     string           `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	VendorName   string           `json:"vendor_name" validate:"omitempty,max=120"`
	CostEstimate *decimal.Decimal `json:"cost_estimate"`
}

// UpdateMaintenanceRequest entrada para editar una solicitud (campos opcionales).
// CreatedBy es inmutable y no aparece aquí.
type UpdateMaintenanceRequest struct {
	PropertyID   *string          `json:"property_id"`
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Priority     *string          `json:"priority"`
	Status       *string          `json:"status"`
	VendorName   *string          `json:"vendor_name"`
	CostEstimate *decimal.Decimal `json:"cost_estimate"`
	ResolvedAt   *string          `json:"resolved_at"`
}

// MaintenanceRequestResponse salida de una solicitud de mantenimiento.
type MaintenanceRequestResponse struct {
	ID           string           `json:"id"`
	PropertyID   string           `json:"property_id"`
	CreatedBy    string           `json:"created_by"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Priority     string           `json:"priority"`
	Status       string           `json:"status"`
	VendorName   string           `json:"vendor_name"`
	CostEstimate *decimal.Decimal `json:"cost_estimate,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
}

// MaintenanceListResponse listado paginado de solicitudes.
type MaintenanceListResponse struct {
	Items []MaintenanceRequestResponse `json:"items"`
	Page  PageResponse                 `json:"page"`
}
