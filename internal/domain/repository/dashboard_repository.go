package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// RentTotals agrupa conteos y sumas de amount_due por estado.
type RentTotals struct {
	DueCount  int64
	LateCount int64
	PaidCount int64
	DueTotal  decimal.Decimal
	LateTotal decimal.Decimal
	PaidTotal decimal.Decimal
}

// DashboardSummary es el resumen global del panel, acotado al alcance del usuario.
type DashboardSummary struct {
	PropertiesCount    int64
	ActiveTenantsCount int64
	Rent               RentTotals
	RentThisPeriod     RentTotals
	OpenMaintenance    int64
	InProgressCount    int64
	UrgentOpenCount    int64
	HighOpenCount      int64
}

// PropertySummary es el resumen por propiedad del panel.
type PropertySummary struct {
	PropertyID      string
	Name            string
	City            string
	ActiveTenants   int64
	Rent            RentTotals
	OpenMaintenance int64
	UrgentOpenCount int64
}

// PropertyTotals agrega los montos de renta de una propiedad (histórico y período actual).
type PropertyTotals struct {
	Rent           RentTotals
	RentThisPeriod RentTotals
}

// DashboardRepository define consultas de solo lectura para el panel.
// Todas aplican el mismo filtrado por rol que el resto de repositorios.
type DashboardRepository interface {
	Summary(ctx context.Context, access scope.Access, month, year int) (*DashboardSummary, error)
	PropertySummaries(ctx context.Context, access scope.Access) ([]PropertySummary, error)
	PropertyTotals(ctx context.Context, access scope.Access, propertyID string, month, year int) (*PropertyTotals, error)
}
