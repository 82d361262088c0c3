package usecase

import (
	"time"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
)

// parseDate interpreta una fecha de calendario (2006-01-02) de la entrada del
// cliente; una fecha malformada es un error de validación del campo, no un 500.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "fecha inválida, use formato AAAA-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	return &dto.PropertyResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		PropertyType: p.PropertyType,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	resp := &dto.TenantResponse{
		ID:          t.ID,
		PropertyID:  t.PropertyID,
		UserID:      t.UserID,
		FullName:    t.FullName,
		Email:       t.Email,
		Phone:       t.Phone,
		LeaseStart:  formatDate(t.LeaseStart),
		LeaseEnd:    formatDatePtr(t.LeaseEnd),
		MonthlyRent: t.MonthlyRent,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
	if t.DepositAmount.Valid {
		d := t.DepositAmount.Decimal
		resp.DepositAmount = &d
	}
	return resp
}

func toRentPaymentResponse(rp *entity.RentPayment) *dto.RentPaymentResponse {
	if rp == nil {
		return nil
	}
	return &dto.RentPaymentResponse{
		ID:          rp.ID,
		TenantID:    rp.TenantID,
		PeriodMonth: rp.PeriodMonth,
		PeriodYear:  rp.PeriodYear,
		DueDate:     formatDate(rp.DueDate),
		AmountDue:   rp.AmountDue,
		Status:      rp.Status,
		PaidDate:    formatDatePtr(rp.PaidDate),
		Notes:       rp.Notes,
		CreatedAt:   rp.CreatedAt,
	}
}

func toMaintenanceResponse(m *entity.MaintenanceRequest) *dto.MaintenanceRequestResponse {
	if m == nil {
		return nil
	}
	resp := &dto.MaintenanceRequestResponse{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		CreatedBy:   m.CreatedBy,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		VendorName:  m.VendorName,
		CreatedAt:   m.CreatedAt,
		ResolvedAt:  m.ResolvedAt,
	}
	if m.CostEstimate.Valid {
		d := m.CostEstimate.Decimal
		resp.CostEstimate = &d
	}
	return resp
}
