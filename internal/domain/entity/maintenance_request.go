package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades válidas de una solicitud de mantenimiento.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Estados válidos de una solicitud de mantenimiento.
const (
	MaintenanceOpen       = "OPEN"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceResolved   = "RESOLVED"
)

// ValidPriority indica si la prioridad pertenece al conjunto cerrado.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidMaintenanceStatus indica si el estado pertenece al conjunto cerrado.
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceResolved:
		return true
	}
	return false
}

// MaintenanceRequest representa una solicitud de mantenimiento sobre una
// propiedad. CreatedBy registra quién la creó y es inmutable en ediciones.
type MaintenanceRequest struct {
	ID           string
	PropertyID   string
	CreatedBy    string
	Title        string
	Description  string
	Priority     string
	Status       string
	VendorName   string
	CostEstimate decimal.NullDecimal
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}
