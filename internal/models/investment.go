package models

import "time"

type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
)

// Investment records a committed investment plan.
type Investment struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Amount         float64          `json:"amount"`
	Plan           string           `json:"plan"`
	Status         InvestmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	ExpectedReturn float64          `json:"expectedReturn"`
}
