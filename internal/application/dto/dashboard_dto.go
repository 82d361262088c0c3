package dto

import "github.com/shopspring/decimal"

// RentTotalsResponse conteos y sumas de renta por estado.
type RentTotalsResponse struct {
	DueCount  int64           `json:"due_count"`
	LateCount int64           `json:"late_count"`
	PaidCount int64           `json:"paid_count"`
	DueTotal  decimal.Decimal `json:"due_total"`
	LateTotal decimal.Decimal `json:"late_total"`
	PaidTotal decimal.Decimal `json:"paid_total"`
}

// PropertySummaryResponse resumen por propiedad del panel.
type PropertySummaryResponse struct {
	PropertyID      string             `json:"property_id"`
	Name            string             `json:"name"`
	City            string             `json:"city"`
	ActiveTenants   int64              `json:"active_tenants"`
	Rent            RentTotalsResponse `json:"rent"`
	OpenMaintenance int64              `json:"open_maintenance"`
	UrgentOpenCount int64              `json:"urgent_open_count"`
}

// DashboardResponse resumen global del panel, acotado al alcance del usuario.
type DashboardResponse struct {
	PropertiesCount    int64                     `json:"properties_count"`
	ActiveTenantsCount int64                     `json:"active_tenants_count"`
	Rent               RentTotalsResponse        `json:"rent"`
	RentThisPeriod     RentTotalsResponse        `json:"rent_this_period"`
	CurrentMonth       int                       `json:"current_month"`
	CurrentYear        int                       `json:"current_year"`
	OpenMaintenance    int64                     `json:"open_maintenance"`
	InProgressCount    int64                     `json:"in_progress_count"`
	UrgentOpenCount    int64                     `json:"urgent_open_count"`
	HighOpenCount      int64                     `json:"high_open_count"`
	Properties         []PropertySummaryResponse `json:"properties"`
}
