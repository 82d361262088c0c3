package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/domain/repository"
	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// DashboardUseCase arma el resumen del panel a partir de consultas agregadas
// de solo lectura, siempre acotadas al alcance del usuario.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve conteos y totales globales más el desglose por propiedad.
func (uc *DashboardUseCase) Summary(ctx context.Context, access scope.Access) (*dto.DashboardResponse, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	summary, err := uc.repo.Summary(ctx, access, month, year)
	if err != nil {
		return nil, err
	}
	perProperty, err := uc.repo.PropertySummaries(ctx, access)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		PropertiesCount:    summary.PropertiesCount,
		ActiveTenantsCount: summary.ActiveTenantsCount,
		Rent:               toRentTotalsResponse(summary.Rent),
		RentThisPeriod:     toRentTotalsResponse(summary.RentThisPeriod),
		CurrentMonth:       month,
		CurrentYear:        year,
		OpenMaintenance:    summary.OpenMaintenance,
		InProgressCount:    summary.InProgressCount,
		UrgentOpenCount:    summary.UrgentOpenCount,
		HighOpenCount:      summary.HighOpenCount,
		Properties:         make([]dto.PropertySummaryResponse, 0, len(perProperty)),
	}
	for _, ps := range perProperty {
		resp.Properties = append(resp.Properties, dto.PropertySummaryResponse{
			PropertyID:      ps.PropertyID,
			Name:            ps.Name,
			City:            ps.City,
			ActiveTenants:   ps.ActiveTenants,
			Rent:            toRentTotalsResponse(ps.Rent),
			OpenMaintenance: ps.OpenMaintenance,
			UrgentOpenCount: ps.UrgentOpenCount,
		})
	}
	return resp, nil
}
