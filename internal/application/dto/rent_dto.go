package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRentPaymentRequest entrada para crear un pago de renta individual.
// TenantID debe estar dentro del alcance gestionable del usuario.
type CreateRentPaymentRequest struct {
	TenantID    string          `json:"tenant_id" validate:"required,uuid"`
	PeriodMonth int             `json:"period_month" validate:"required,min=1,max=12"`
	PeriodYear  int             `json:"period_year" validate:"required,min=2000"`
	DueDate     string          `json:"due_date" validate:"required"`
	AmountDue   decimal.Decimal `json:"amount_due" validate:"required"`
	Status      string          `json:"status" validate:"omitempty,oneof=DUE PAID LATE"`
	PaidDate    string          `json:"paid_date"`
	Notes       string          `json:"notes"`
}

// UpdateRentPaymentRequest entrada para editar un pago (campos opcionales).
// Cambiar Status a PAID junto con PaidDate es la liquidación normal.
type UpdateRentPaymentRequest struct {
	TenantID    *string          `json:"tenant_id"`
	PeriodMonth *int             `json:"period_month"`
	PeriodYear  *int             `json:"period_year"`
	DueDate     *string          `json:"due_date"`
	AmountDue   *decimal.Decimal `json:"amount_due"`
	Status      *string          `json:"status"`
	PaidDate    *string          `json:"paid_date"`
	Notes       *string          `json:"notes"`
}

// RentPaymentResponse salida de un pago de renta.
type RentPaymentResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	DueDate     string          `json:"due_date"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Status      string          `json:"status"`
	PaidDate    *string         `json:"paid_date,omitempty"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RentPaymentListResponse listado paginado de pagos.
type RentPaymentListResponse struct {
	Items []RentPaymentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ScheduleResponse resultado de generar (o regenerar) el calendario de un inquilino.
type ScheduleResponse struct {
	TenantID string                `json:"tenant_id"`
	Payments []RentPaymentResponse `json:"payments"`
}
