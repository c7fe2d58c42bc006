// Package mxtm is the mock backend for the MXTM investment web application:
// a fake authentication/user-profile layer and fake transaction, investment,
// withdrawal, deposit and identity-verification operations.
//
// Nothing here is real. Logins always succeed, balances are locked to a
// configured amount, withdrawals always fail with canned copy, and
// verifications approve themselves. State lives in process memory plus a
// small durable key-value store that stands in for the browser storage the
// web client uses.
//
// Construct a Backend explicitly and inject it into callers; there are no
// package-level singletons:
//
//	cfg := mxtm.DefaultConfig()
//	b, err := mxtm.Open(ctx, cfg)
//	...
//	defer b.Close()
package mxtm

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/cloudcfg"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/funding"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/ledger"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/session"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/storage"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/verification"
)

// Re-exported types, so embedders never import internal packages.
type (
	Config             = config.Config
	User               = models.User
	UserStatus         = models.UserStatus
	Transaction        = models.Transaction
	TransactionType    = models.TransactionType
	TransactionStatus  = models.TransactionStatus
	Investment         = models.Investment
	VerificationRecord = models.VerificationRecord
	VerificationStatus = models.VerificationStatus

	RegisterData            = session.RegisterData
	AuthResult              = session.AuthResult
	UserUpdate              = session.UserUpdate
	CreateTransactionParams = ledger.CreateTransactionParams
	CreateInvestmentParams  = ledger.CreateInvestmentParams
	WithdrawalResult        = funding.WithdrawalResult
	DepositResult           = funding.DepositResult
	VerificationData        = verification.SubmissionData
	SubmissionResult        = verification.SubmissionResult

	Store  = storage.Store
	Logger = logging.Logger

	CloudConfig  = cloudcfg.Config
	CloudHandles = cloudcfg.Handles
)

// Status and enum values, re-exported for embedders.
const (
	UserStatusActive  = models.UserStatusActive
	UserStatusPending = models.UserStatusPending
	UserStatusBlocked = models.UserStatusBlocked

	TransactionTypeDeposit    = models.TransactionTypeDeposit
	TransactionTypeWithdrawal = models.TransactionTypeWithdrawal
	TransactionTypeInvestment = models.TransactionTypeInvestment

	TransactionStatusPending   = models.TransactionStatusPending
	TransactionStatusCompleted = models.TransactionStatusCompleted
	TransactionStatusFailed    = models.TransactionStatusFailed

	VerificationStatusApproved = models.VerificationStatusApproved
	VerificationStatusRejected = models.VerificationStatusRejected
	VerificationStatusPending  = models.VerificationStatusPending
)

// Backend wires the session manager and domain services over one store.
type Backend struct {
	cfg    *config.Config
	db     *sql.DB
	store  storage.Store
	logger logging.Logger

	session      *session.Manager
	ledger       *ledger.Service
	funding      *funding.Service
	verification *verification.Service
}

// DefaultConfig returns the stock demo configuration.
func DefaultConfig() *Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

// LoadConfig builds a Config from defaults plus an optional JSON overlay.
func LoadConfig(path string) (*Config, error) {
	return config.LoadConfig(path)
}

// NewMemoryStore returns an ephemeral in-process Store.
func NewMemoryStore() Store {
	return storage.NewMemoryStore()
}

// Open creates a Backend over a SQLite-backed store at cfg.StorageDSN,
// logging JSON to stdout. Close releases the database handle.
func Open(ctx context.Context, cfg *Config) (*Backend, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := storage.Open(ctx, cfg.StorageDSN)
	if err != nil {
		return nil, err
	}

	b := New(cfg, storage.NewSQLiteStore(db), logger)
	b.db = db
	return b, nil
}

// New creates a Backend over an injected store and logger. Use it with
// NewMemoryStore for tests and ephemeral sessions.
func New(cfg *Config, store Store, logger Logger) *Backend {
	sess := session.NewManager(store, cfg, logger)
	return &Backend{
		cfg:          cfg,
		store:        store,
		logger:       logger,
		session:      sess,
		ledger:       ledger.NewService(sess, cfg, logger),
		funding:      funding.NewService(sess, store, cfg, logger),
		verification: verification.NewService(sess, store, cfg, logger),
	}
}

// Close releases the underlying database handle, if any.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// CloudConfig returns the placeholder hosted-backend configuration and its
// nil service handles.
func (b *Backend) CloudConfig() (CloudConfig, CloudHandles) {
	return cloudcfg.Default(), cloudcfg.NilHandles()
}

// --- session ---

// Login authenticates with any credentials and establishes the current user.
func (b *Backend) Login(ctx context.Context, email, password string) AuthResult {
	return b.session.Login(ctx, email, password)
}

// Register creates an account from the supplied profile. Always succeeds.
func (b *Backend) Register(ctx context.Context, data RegisterData) AuthResult {
	return b.session.Register(ctx, data)
}

// CurrentUser returns the current user, or (nil, nil) when nobody is
// logged in.
func (b *Backend) CurrentUser(ctx context.Context) (*User, error) {
	return b.session.CurrentUser(ctx)
}

// UpdateCurrentUser merges a partial update into the current user.
func (b *Backend) UpdateCurrentUser(ctx context.Context, upd UserUpdate) {
	b.session.UpdateCurrentUser(ctx, upd)
}

// Logout clears the session, in memory and in the store.
func (b *Backend) Logout(ctx context.Context) {
	b.session.Logout(ctx)
}

// UserByEmail returns the canned profile for any email.
func (b *Backend) UserByEmail(ctx context.Context, email string) (*User, error) {
	return b.session.UserByEmail(ctx, email)
}

// UserBalance reports the locked balance for any user id.
func (b *Backend) UserBalance(ctx context.Context, userID string) (float64, error) {
	return b.session.UserBalance(ctx, userID)
}

// UpdateUserBalance accepts and discards a balance change.
func (b *Backend) UpdateUserBalance(ctx context.Context, userID string, balance float64) error {
	return b.session.UpdateUserBalance(ctx, userID, balance)
}

// AddProfitToUser accepts and discards a profit credit.
func (b *Backend) AddProfitToUser(ctx context.Context, userID string, amount float64) error {
	return b.session.AddProfit(ctx, userID, amount)
}

// DeductFromUserBalance accepts and discards a balance deduction.
func (b *Backend) DeductFromUserBalance(ctx context.Context, userID string, amount float64) error {
	return b.session.DeductFromBalance(ctx, userID, amount)
}

// UpdateUserStatus accepts and discards a status change.
func (b *Backend) UpdateUserStatus(ctx context.Context, userID string, status UserStatus) error {
	return b.session.UpdateUserStatus(ctx, userID, status)
}

// ResetPassword simulates a reset request and returns the reset token.
func (b *Backend) ResetPassword(ctx context.Context, email string) (string, error) {
	return b.session.ResetPassword(ctx, email)
}

// UpdatePassword simulates completing a reset with the given token.
func (b *Backend) UpdatePassword(ctx context.Context, token, newPassword string) error {
	return b.session.UpdatePassword(ctx, token, newPassword)
}

// --- transactions & investments ---

// UserTransactions returns the canned transaction history.
func (b *Backend) UserTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	return b.ledger.UserTransactions(ctx, userID)
}

// UserInvestments returns the canned investment list.
func (b *Backend) UserInvestments(ctx context.Context, userID string) ([]Investment, error) {
	return b.ledger.UserInvestments(ctx, userID)
}

// CreateTransaction records a transaction in memory and returns its id.
func (b *Backend) CreateTransaction(ctx context.Context, p CreateTransactionParams) (string, error) {
	return b.ledger.CreateTransaction(ctx, p)
}

// CreateInvestment records an active investment in memory and returns its id.
func (b *Backend) CreateInvestment(ctx context.Context, p CreateInvestmentParams) (string, error) {
	return b.ledger.CreateInvestment(ctx, p)
}

// AddTransaction appends a caller-built transaction (compatibility path).
func (b *Backend) AddTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	return b.ledger.AddTransaction(ctx, tx)
}

// RecordedTransactions returns a snapshot of the in-memory transaction list.
func (b *Backend) RecordedTransactions(ctx context.Context) []Transaction {
	return b.ledger.RecordedTransactions(ctx)
}

// RecordedInvestments returns a snapshot of the in-memory investment list.
func (b *Backend) RecordedInvestments(ctx context.Context) []Investment {
	return b.ledger.RecordedInvestments(ctx)
}

// --- funding ---

// Withdraw rejects every withdrawal with the configured notice.
func (b *Backend) Withdraw(ctx context.Context, amount float64, method, accountDetails string) WithdrawalResult {
	return b.funding.Withdraw(ctx, amount, method, accountDetails)
}

// ProcessWithdrawal is the older flat entry point for Withdraw.
func (b *Backend) ProcessWithdrawal(ctx context.Context, userID string, amount float64, method, accountDetails string) WithdrawalResult {
	return b.funding.Withdraw(ctx, amount, method, accountDetails)
}

// Deposit acknowledges every deposit request.
func (b *Backend) Deposit(ctx context.Context, amount float64, method string) DepositResult {
	return b.funding.Deposit(ctx, amount, method)
}

// ProcessDeposit records a pending deposit against the stored user.
func (b *Backend) ProcessDeposit(ctx context.Context, userEmail string, amount float64, method string) (string, error) {
	return b.funding.ProcessDeposit(ctx, userEmail, amount, method)
}

// StoredTransactions returns the durable deposit-path transaction list.
func (b *Backend) StoredTransactions(ctx context.Context) ([]Transaction, error) {
	return b.funding.StoredTransactions(ctx)
}

// --- verification ---

// SubmitVerification records and auto-approves a verification.
func (b *Backend) SubmitVerification(ctx context.Context, userEmail, userName string, data VerificationData) SubmissionResult {
	return b.verification.Submit(ctx, userEmail, userName, data)
}

// UserVerifications returns all stored verification records.
func (b *Backend) UserVerifications(ctx context.Context) []VerificationRecord {
	return b.verification.List(ctx)
}

// VerificationByID returns a stored record, or (nil, nil) when absent.
func (b *Backend) VerificationByID(ctx context.Context, id string) (*VerificationRecord, error) {
	return b.verification.ByID(ctx, id)
}

// UpdateVerificationStatus changes a stored record's status.
func (b *Backend) UpdateVerificationStatus(ctx context.Context, id string, status VerificationStatus) error {
	return b.verification.UpdateStatus(ctx, id, status)
}

// UpdateVerificationNotes replaces a stored record's admin notes.
func (b *Backend) UpdateVerificationNotes(ctx context.Context, id, notes string) error {
	return b.verification.UpdateNotes(ctx, id, notes)
}
