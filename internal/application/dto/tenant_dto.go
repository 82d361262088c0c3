package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTenantRequest entrada para crear un inquilino. PropertyID es elegido
// por el cliente y debe estar dentro del alcance gestionable del usuario.
// Fechas de calendario en formato 2006-01-02.
type CreateTenantRequest struct {
	PropertyID    string          `json:"property_id" validate:"required,uuid"`
	UserID        string          `json:"user_id" validate:"omitempty,uuid"`
	FullName      string          `json:"full_name" validate:"required,max=120"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Phone         string          `json:"phone" validate:"omitempty,max=40"`
	LeaseStart    string          `json:"lease_start" validate:"required"`
	LeaseEnd      string          `json:"lease_end"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent" validate:"required"`
	DepositAmount *decimal.Decimal `json:"deposit_amount"`
	IsActive      *bool           `json:"is_active"`
}

// UpdateTenantRequest entrada para editar un inquilino (campos opcionales).
type UpdateTenantRequest struct {
	PropertyID    *string          `json:"property_id"`
	UserID        *string          `json:"user_id"`
	FullName      *string          `json:"full_name"`
	Email         *string          `json:"email"`
	Phone         *string          `json:"phone"`
	LeaseStart    *string          `json:"lease_start"`
	LeaseEnd      *string          `json:"lease_end"`
	MonthlyRent   *decimal.Decimal `json:"monthly_rent"`
	DepositAmount *decimal.Decimal `json:"deposit_amount"`
	IsActive      *bool            `json:"is_active"`
}

// TenantResponse salida de un inquilino.
type TenantResponse struct {
	ID            string           `json:"id"`
	PropertyID    string           `json:"property_id"`
	UserID        *string          `json:"user_id,omitempty"`
	FullName      string           `json:"full_name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	LeaseStart    string           `json:"lease_start"`
	LeaseEnd      *string          `json:"lease_end,omitempty"`
	MonthlyRent   decimal.Decimal  `json:"monthly_rent"`
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
}

// TenantListResponse listado paginado de inquilinos.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
