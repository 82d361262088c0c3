package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant representa un inquilino de una propiedad. UserID enlaza opcionalmente
// con una cuenta de usuario (rol TENANT); al borrar la propiedad se elimina en
// cascada, y con él sus pagos de renta.
type Tenant struct {
	ID            string
	UserID        *string
	PropertyID    string
	FullName      string
	Email         string
	Phone         string
	LeaseStart    time.Time
	LeaseEnd      *time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.NullDecimal
	IsActive      bool
	CreatedAt     time.Time
}
