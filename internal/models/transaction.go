package models

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeInvestment TransactionType = "investment"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction records a deposit, withdrawal or investment request.
// Records are append-only; nothing mutates them after creation.
type Transaction struct {
	ID             string            `json:"id"`
	UserID         string            `json:"userId"`
	Type           TransactionType   `json:"type"`
	Amount         float64           `json:"amount"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	Description    string            `json:"description"`
	Method         string            `json:"method,omitempty"`
	AccountDetails string            `json:"accountDetails,omitempty"`
	FailureReason  string            `json:"failureReason,omitempty"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}
