// Package ledger provides the transaction and investment operations.
//
// Reads return canned history; writes append to in-process lists that live
// for the lifetime of the process and are never persisted. The two are
// deliberately disjoint, matching the web client's existing expectations.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/common"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/session"
)

// defaultUserID is stamped onto canned records when no user id is supplied.
const defaultUserID = "1"

// CreateTransactionParams describes a transaction to record. Status
// defaults to pending when empty.
type CreateTransactionParams struct {
	Type           models.TransactionType
	Amount         float64
	Status         models.TransactionStatus
	Description    string
	Method         string
	AccountDetails string
}

// CreateInvestmentParams describes an investment to record. Status is
// always active.
type CreateInvestmentParams struct {
	Amount         float64
	Plan           string
	ExpectedReturn float64
}

// Service owns the in-memory transaction and investment lists.
type Service struct {
	mu           sync.Mutex
	transactions []models.Transaction
	investments  []models.Investment

	session *session.Manager
	cfg     *config.Config
	logger  logging.Logger
}

func NewService(sess *session.Manager, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		session: sess,
		cfg:     cfg,
		logger:  logger.With("component", "ledger"),
	}
}

// UserTransactions returns the canned transaction history: one completed
// PIX deposit and one failed bank-transfer withdrawal. It ignores anything
// recorded by CreateTransaction.
func (s *Service) UserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	if userID == "" {
		userID = defaultUserID
	}

	now := time.Now()
	return []models.Transaction{
		{
			ID:          "1",
			UserID:      userID,
			Type:        models.TransactionTypeDeposit,
			Amount:      1000,
			Status:      models.TransactionStatusCompleted,
			CreatedAt:   now,
			Description: "Deposit via PIX",
			Method:      "PIX",
		},
		{
			ID:            "2",
			UserID:        userID,
			Type:          models.TransactionTypeWithdrawal,
			Amount:        500,
			Status:        models.TransactionStatusFailed,
			CreatedAt:     now,
			Description:   "Withdrawal via Bank Transfer",
			Method:        "Bank Transfer",
			FailureReason: "Insufficient balance for withdrawal fee",
		},
	}, nil
}

// UserInvestments returns the canned investment list.
func (s *Service) UserInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	if userID == "" {
		userID = defaultUserID
	}

	return []models.Investment{
		{
			ID:             "1",
			UserID:         userID,
			Amount:         2000,
			Plan:           "Premium Plan",
			Status:         models.InvestmentStatusActive,
			CreatedAt:      time.Now(),
			ExpectedReturn: 2400,
		},
	}, nil
}

// CreateTransaction records a transaction in the in-memory list and returns
// its generated id.
func (s *Service) CreateTransaction(ctx context.Context, p CreateTransactionParams) (string, error) {
	status := p.Status
	if status == "" {
		status = models.TransactionStatusPending
	}

	tx := models.Transaction{
		ID:             newTransactionID(),
		UserID:         s.currentUserID(),
		Type:           p.Type,
		Amount:         p.Amount,
		Status:         status,
		CreatedAt:      time.Now(),
		Description:    p.Description,
		Method:         p.Method,
		AccountDetails: p.AccountDetails,
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	s.mu.Unlock()

	s.logger.Info(ctx, "transaction recorded", "id", tx.ID, "type", tx.Type)
	return tx.ID, nil
}

// CreateInvestment records an active investment in the in-memory list and
// returns its generated id.
func (s *Service) CreateInvestment(ctx context.Context, p CreateInvestmentParams) (string, error) {
	inv := models.Investment{
		ID:             newInvestmentID(),
		UserID:         s.currentUserID(),
		Amount:         p.Amount,
		Plan:           p.Plan,
		Status:         models.InvestmentStatusActive,
		CreatedAt:      time.Now(),
		ExpectedReturn: p.ExpectedReturn,
	}

	s.mu.Lock()
	s.investments = append(s.investments, inv)
	s.mu.Unlock()

	s.logger.Info(ctx, "investment recorded", "id", inv.ID, "plan", inv.Plan)
	return inv.ID, nil
}

// AddTransaction appends a caller-built transaction, assigning id and
// timestamp. Kept for compatibility with the older flat API.
func (s *Service) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	tx.ID = fmt.Sprintf("%d", time.Now().UnixMilli())
	tx.CreatedAt = time.Now()

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	s.mu.Unlock()

	return tx, nil
}

// RecordedTransactions returns a snapshot of the in-memory transaction
// list (the records appended by CreateTransaction and AddTransaction).
func (s *Service) RecordedTransactions(ctx context.Context) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// RecordedInvestments returns a snapshot of the in-memory investment list.
func (s *Service) RecordedInvestments(ctx context.Context) []models.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Investment, len(s.investments))
	copy(out, s.investments)
	return out
}

// currentUserID reads the in-memory session slot, falling back to the
// default id when nobody is logged in.
func (s *Service) currentUserID() string {
	if u := s.session.Current(); u != nil {
		return u.ID
	}
	return defaultUserID
}

func newTransactionID() string {
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), common.MakeIDSuffix())
}

func newInvestmentID() string {
	return fmt.Sprintf("INV_%d_%s", time.Now().UnixMilli(), common.MakeIDSuffix())
}
