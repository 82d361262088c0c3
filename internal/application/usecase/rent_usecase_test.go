package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
	"github.com/jhoicas/inmuebles-api/internal/domain"
	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
)

const testTenantID = "55555555-5555-5555-5555-555555555555"

func buildRentUC() (*usecase.RentUseCase, *fakeRentRepo, *fakeTenantRepo) {
	rents := newFakeRentRepo()
	tenants := newFakeTenantRepo()
	tenants.put(&entity.Tenant{
		ID:          testTenantID,
		PropertyID:  testPropertyID,
		FullName:    "Ana Torres",
		MonthlyRent: decimal.NewFromInt(950),
		IsActive:    true,
	})
	return usecase.NewRentUseCase(rents, tenants), rents, tenants
}

func seedPayment(rents *fakeRentRepo, status string) *entity.RentPayment {
	rp := &entity.RentPayment{
		ID:          "66666666-6666-6666-6666-666666666666",
		TenantID:    testTenantID,
		PeriodMonth: 3,
		PeriodYear:  2025,
		DueDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		AmountDue:   decimal.NewFromInt(950),
		Status:      status,
	}
	rents.payments[periodKey{tenantID: testTenantID, month: 3, year: 2025}] = rp
	return rp
}

func TestRentCreate_EstadoPorDefectoDUE(t *testing.T) {
	uc, _, _ := buildRentUC()

	out, err := uc.Create(managerAccess(), dto.CreateRentPaymentRequest{
		TenantID:    testTenantID,
		PeriodMonth: 7,
		PeriodYear:  2025,
		DueDate:     "2025-07-01",
		AmountDue:   decimal.NewFromInt(950),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RentDue, out.Status)
	assert.Nil(t, out.PaidDate)
}

// Un período repetido para el mismo inquilino viola el constraint único.
func TestRentCreate_PeriodoDuplicado(t *testing.T) {
	uc, rents, _ := buildRentUC()
	seedPayment(rents, entity.RentDue)

	_, err := uc.Create(managerAccess(), dto.CreateRentPaymentRequest{
		TenantID:    testTenantID,
		PeriodMonth: 3,
		PeriodYear:  2025,
		DueDate:     "2025-03-01",
		AmountDue:   decimal.NewFromInt(950),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Un inquilino fuera del conjunto gestionable se rechaza como validación del
// campo, sin revelar si existe.
func TestRentCreate_InquilinoFueraDeAlcance(t *testing.T) {
	uc, _, _ := buildRentUC()

	_, err := uc.Create(managerAccess(), dto.CreateRentPaymentRequest{
		TenantID:    "77777777-7777-7777-7777-777777777777",
		PeriodMonth: 7,
		PeriodYear:  2025,
		DueDate:     "2025-07-01",
		AmountDue:   decimal.NewFromInt(950),
	})
	ve := asValidation(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "tenant_id")
}

func TestRentCreate_MesFueraDeRango(t *testing.T) {
	uc, _, _ := buildRentUC()

	_, err := uc.Create(managerAccess(), dto.CreateRentPaymentRequest{
		TenantID:    testTenantID,
		PeriodMonth: 13,
		PeriodYear:  2025,
		DueDate:     "2025-07-01",
		AmountDue:   decimal.NewFromInt(950),
	})
	ve := asValidation(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "period_month")
}

// Liquidación normal: DUE -> PAID con fecha de pago.
func TestRentUpdate_MarcarPagado(t *testing.T) {
	uc, rents, _ := buildRentUC()
	rp := seedPayment(rents, entity.RentDue)

	status := entity.RentPaid
	paidDate := "2025-03-05"
	out, err := uc.Update(managerAccess(), rp.ID, dto.UpdateRentPaymentRequest{
		Status:   &status,
		PaidDate: &paidDate,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RentPaid, out.Status)
	require.NotNil(t, out.PaidDate)
	assert.Equal(t, "2025-03-05", *out.PaidDate)
}

// También LATE -> PAID es una liquidación válida.
func TestRentUpdate_AtrasadoAPagado(t *testing.T) {
	uc, rents, _ := buildRentUC()
	rp := seedPayment(rents, entity.RentLate)

	status := entity.RentPaid
	paidDate := "2025-04-20"
	out, err := uc.Update(managerAccess(), rp.ID, dto.UpdateRentPaymentRequest{
		Status:   &status,
		PaidDate: &paidDate,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RentPaid, out.Status)
}

// Salir de PAID está permitido: el modelo registra lo que el gestor decida,
// por ejemplo al corregir un pago asentado por error.
func TestRentUpdate_SalirDePagadoPermitido(t *testing.T) {
	uc, rents, _ := buildRentUC()
	rp := seedPayment(rents, entity.RentPaid)

	status := entity.RentDue
	clear := ""
	out, err := uc.Update(managerAccess(), rp.ID, dto.UpdateRentPaymentRequest{
		Status:   &status,
		PaidDate: &clear,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RentDue, out.Status)
	assert.Nil(t, out.PaidDate, "limpiar paid_date con cadena vacía")
}

func TestRentUpdate_EstadoInvalido(t *testing.T) {
	uc, rents, _ := buildRentUC()
	rp := seedPayment(rents, entity.RentDue)

	status := "CANCELLED"
	_, err := uc.Update(managerAccess(), rp.ID, dto.UpdateRentPaymentRequest{Status: &status})
	ve := asValidation(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "status")
}
