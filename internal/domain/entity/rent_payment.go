package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pago de renta.
// Transiciones normales: DUE -> PAID, DUE -> LATE (job batch), LATE -> PAID.
// El modelo no prohíbe salir de PAID; se acepta como caso inusual pero válido.
const (
	RentDue  = "DUE"
	RentPaid = "PAID"
	RentLate = "LATE"
)

// ValidRentStatus indica si el estado pertenece al conjunto cerrado.
func ValidRentStatus(s string) bool {
	switch s {
	case RentDue, RentPaid, RentLate:
		return true
	}
	return false
}

// RentPayment representa un pago de renta de un inquilino para un período
// (mes, año). Invariante: como máximo un registro por (tenant, mes, año),
// respaldado por un constraint único en la base.
type RentPayment struct {
	ID          string
	TenantID    string
	PeriodMonth int // 1-12
	PeriodYear  int
	DueDate     time.Time
	AmountDue   decimal.Decimal
	Status      string
	PaidDate    *time.Time
	Notes       string
	CreatedAt   time.Time
}
