package rentschedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
	"github.com/jhoicas/inmuebles-api/internal/domain/rentschedule"
)

func TestPeriods_SeisMesesSinCambioDeAnio(t *testing.T) {
	start := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	periods := rentschedule.Periods(start, 6)

	require.Len(t, periods, 6)
	for i, p := range periods {
		assert.Equal(t, 3+i, p.Month)
		assert.Equal(t, 2026, p.Year)
	}
}

// Alta en noviembre: períodos 11,12 del año de inicio y 1,2,3,4 del siguiente.
func TestPeriods_CruceDeAnio(t *testing.T) {
	start := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)
	periods := rentschedule.Periods(start, 6)

	want := []rentschedule.Period{
		{Month: 11, Year: 2026},
		{Month: 12, Year: 2026},
		{Month: 1, Year: 2027},
		{Month: 2, Year: 2027},
		{Month: 3, Year: 2027},
		{Month: 4, Year: 2027},
	}
	assert.Equal(t, want, periods)
}

func TestPeriods_DesdeDiciembre(t *testing.T) {
	start := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	periods := rentschedule.Periods(start, 6)

	assert.Equal(t, rentschedule.Period{Month: 12, Year: 2025}, periods[0])
	assert.Equal(t, rentschedule.Period{Month: 5, Year: 2026}, periods[5])
}

func TestPeriod_DueDate_PrimerDiaDelMes(t *testing.T) {
	p := rentschedule.Period{Month: 2, Year: 2027}
	assert.Equal(t, time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC), p.DueDate())
}

// La mora se decide por fecha calendario: un pago que vence hoy no es anterior
// a hoy aunque el reloj ya marque mediodía.
func TestDayOf_VencimientoDeHoyNoEstaAtrasado(t *testing.T) {
	dueToday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 1, 12, 34, 56, 0, time.UTC)

	today := rentschedule.DayOf(now)
	assert.Equal(t, dueToday, today)
	assert.False(t, dueToday.Before(today), "un pago que vence hoy no debe contarse como atrasado")

	dueYesterday := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, dueYesterday.Before(today))
}

func TestBuild_SeisPagosDueConMontoDeRenta(t *testing.T) {
	tenant := &entity.Tenant{
		ID:          "t-1",
		PropertyID:  "p-1",
		FullName:    "Inquilino Uno",
		MonthlyRent: decimal.NewFromInt(1000),
	}
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	payments := rentschedule.Build(tenant, start, rentschedule.DefaultMonths)
	require.Len(t, payments, 6)

	seen := make(map[rentschedule.Period]bool)
	for i, rp := range payments {
		assert.Equal(t, "t-1", rp.TenantID)
		assert.Equal(t, entity.RentDue, rp.Status)
		assert.True(t, rp.AmountDue.Equal(decimal.NewFromInt(1000)), "pago %d debe ser por 1000", i)
		assert.Equal(t, 1, rp.DueDate.Day(), "vencimiento debe ser el día 1")
		assert.Nil(t, rp.PaidDate)
		assert.NotEmpty(t, rp.ID)

		period := rentschedule.Period{Month: rp.PeriodMonth, Year: rp.PeriodYear}
		assert.False(t, seen[period], "período %v repetido", period)
		seen[period] = true
	}
	assert.Equal(t, 1, payments[0].PeriodMonth, "el primer período debe ser el mes de inicio")
	assert.Equal(t, 2026, payments[0].PeriodYear)
}
