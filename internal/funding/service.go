// Package funding implements the withdrawal and deposit operations.
//
// Withdrawals always fail with the configured upsell notice, deposits
// always succeed with the configured confirmation, and neither ever moves
// money. ProcessDeposit is the one durable path: it appends a pending
// transaction to the stored list the web client reads back.
package funding

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/common"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/session"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/storage"
)

// WithdrawalResult is the outcome of a withdrawal request.
type WithdrawalResult struct {
	Success       bool
	Message       string
	TransactionID string
}

// DepositResult is the outcome of a deposit request.
type DepositResult struct {
	Success bool
	Message string
}

// Service handles withdrawal and deposit requests.
type Service struct {
	mu      sync.Mutex
	session *session.Manager
	store   storage.Store
	cfg     *config.Config
	logger  logging.Logger
}

func NewService(sess *session.Manager, store storage.Store, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		session: sess,
		store:   store,
		cfg:     cfg,
		logger:  logger.With("component", "funding"),
	}
}

// Withdraw rejects every withdrawal. Without a current user it reports a
// not-authenticated failure; otherwise it returns the configured notice.
// No transaction is recorded either way.
func (s *Service) Withdraw(ctx context.Context, amount float64, method, accountDetails string) WithdrawalResult {
	if s.session.Current() == nil {
		return WithdrawalResult{Success: false, Message: "User not authenticated"}
	}

	s.logger.Info(ctx, "withdrawal rejected", "amount", amount, "method", method)
	return WithdrawalResult{Success: false, Message: s.cfg.WithdrawalNotice}
}

// Deposit acknowledges every deposit request. The balance never changes.
func (s *Service) Deposit(ctx context.Context, amount float64, method string) DepositResult {
	s.logger.Info(ctx, "deposit acknowledged", "amount", amount, "method", method)
	return DepositResult{Success: true, Message: s.cfg.DepositNotice}
}

// ProcessDeposit records a pending deposit against the durably stored user
// and returns the transaction id. Unlike Deposit it bypasses the in-memory
// session and works purely off the store, so it functions across process
// restarts. The stored balance is intentionally left untouched.
func (s *Service) ProcessDeposit(ctx context.Context, userEmail string, amount float64, method string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return "", fmt.Errorf("failed to process deposit: %w", err)
	}
	if raw == nil {
		return "", fmt.Errorf("failed to process deposit: %w", common.ErrorUserNotFound)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return "", fmt.Errorf("failed to process deposit: %w", err)
	}

	tx := models.Transaction{
		ID:          fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), common.MakeIDSuffix()),
		UserID:      user.ID,
		Type:        models.TransactionTypeDeposit,
		Amount:      amount,
		Method:      method,
		Status:      models.TransactionStatusPending,
		CreatedAt:   time.Now(),
		Description: "Deposit via " + method,
	}

	list, err := s.loadStoredTransactions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to process deposit: %w", err)
	}

	list = append(list, tx)
	encoded, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to process deposit: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyTransactions, encoded); err != nil {
		return "", fmt.Errorf("failed to process deposit: %w", err)
	}

	s.logger.Info(ctx, "deposit recorded", "id", tx.ID, "email", userEmail, "amount", amount)
	return tx.ID, nil
}

// StoredTransactions returns the durable deposit-path transaction list.
func (s *Service) StoredTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadStoredTransactions(ctx)
}

func (s *Service) loadStoredTransactions(ctx context.Context) ([]models.Transaction, error) {
	raw, err := s.store.Get(ctx, storage.KeyTransactions)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var list []models.Transaction
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
