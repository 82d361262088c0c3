// Package rentschedule genera el calendario inicial de pagos de renta que se
// materializa al dar de alta un inquilino.
package rentschedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inmuebles-api/internal/domain/entity"
)

// DefaultMonths es la cantidad de períodos mensuales generados al crear un inquilino.
const DefaultMonths = 6

// Period identifica un ciclo de facturación (mes 1-12, año).
type Period struct {
	Month int
	Year  int
}

// DueDate devuelve el vencimiento del período: el día 1 del mes.
func (p Period) DueDate() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// DayOf trunca a fecha calendario UTC. La mora se decide comparando fechas,
// nunca horas: un pago que vence hoy todavía no está atrasado.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Periods calcula n períodos mensuales consecutivos empezando en el mes/año de start.
// El mes aritmético se normaliza módulo 12 con arrastre al año siguiente.
func Periods(start time.Time, n int) []Period {
	startMonth := int(start.Month())
	startYear := start.Year()

	periods := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		month := ((startMonth - 1 + i) % 12) + 1
		year := startYear + (startMonth-1+i)/12
		periods = append(periods, Period{Month: month, Year: year})
	}
	return periods
}

// Build materializa los registros de pago para un inquilino: n períodos desde
// start, todos en estado DUE y por el monto de la renta mensual. La inserción
// es responsabilidad del llamador (upsert-si-ausente dentro de una transacción,
// para que regenerar el calendario sea idempotente y nunca pise un pago PAID o LATE).
func Build(tenant *entity.Tenant, start time.Time, n int) []*entity.RentPayment {
	now := time.Now()
	payments := make([]*entity.RentPayment, 0, n)
	for _, p := range Periods(start, n) {
		payments = append(payments, &entity.RentPayment{
			ID:          uuid.New().String(),
			TenantID:    tenant.ID,
			PeriodMonth: p.Month,
			PeriodYear:  p.Year,
			DueDate:     p.DueDate(),
			AmountDue:   tenant.MonthlyRent,
			Status:      entity.RentDue,
			CreatedAt:   now,
		})
	}
	return payments
}
