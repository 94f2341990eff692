package domain

import (
	"context"
	"errors"
)

// DashboardUserID is the only user the dashboard ever reads.
const DashboardUserID = 1

// UserNotFoundMessage is the error text returned to clients when the row is missing.
const UserNotFoundMessage = "Usuario no encontrado"

var ErrUserNotFound = errors.New("user not found")

// KingdomRecord is a user's kingdom name and coin balance as stored in usuarios.
// A NULL column stays nil and is rendered as JSON null.
type KingdomRecord struct {
	Reino   *string `json:"reino"`
	Monedas *int64  `json:"monedas"`
}

// NewKingdomRecord builds a record with both columns set.
func NewKingdomRecord(reino string, monedas int64) KingdomRecord {
	return KingdomRecord{Reino: &reino, Monedas: &monedas}
}

// KingdomReader looks up the kingdom record shown on the dashboard.
type KingdomReader interface {
	FindKingdom(ctx context.Context) (KingdomRecord, error)
}
