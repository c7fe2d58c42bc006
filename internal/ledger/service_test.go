package ledger

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/session"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/storage"
)

var (
	txnIDPattern = regexp.MustCompile(`^TXN_\d+_[A-Za-z0-9]+$`)
	invIDPattern = regexp.MustCompile(`^INV_\d+_[A-Za-z0-9]+$`)
)

func newTestService(t *testing.T) (*Service, *session.Manager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SimulatedLatency = 0
	logger := logging.NewDiscardLogger()
	sess := session.NewManager(storage.NewMemoryStore(), cfg, logger)
	return NewService(sess, cfg, logger), sess
}

func TestUserTransactions_CannedHistory(t *testing.T) {
	s, _ := newTestService(t)

	list, err := s.UserTransactions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 2)

	deposit := list[0]
	assert.Equal(t, "1", deposit.UserID)
	assert.Equal(t, models.TransactionTypeDeposit, deposit.Type)
	assert.Equal(t, float64(1000), deposit.Amount)
	assert.Equal(t, models.TransactionStatusCompleted, deposit.Status)
	assert.Equal(t, "PIX", deposit.Method)

	withdrawal := list[1]
	assert.Equal(t, models.TransactionTypeWithdrawal, withdrawal.Type)
	assert.Equal(t, float64(500), withdrawal.Amount)
	assert.Equal(t, models.TransactionStatusFailed, withdrawal.Status)
	assert.Equal(t, "Insufficient balance for withdrawal fee", withdrawal.FailureReason)
}

func TestUserTransactions_StampsSuppliedUserID(t *testing.T) {
	s, _ := newTestService(t)

	list, err := s.UserTransactions(context.Background(), "u-7")
	require.NoError(t, err)
	for _, tx := range list {
		assert.Equal(t, "u-7", tx.UserID)
	}
}

func TestUserInvestments_CannedList(t *testing.T) {
	s, _ := newTestService(t)

	list, err := s.UserInvestments(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 1)

	inv := list[0]
	assert.Equal(t, "1", inv.UserID)
	assert.Equal(t, float64(2000), inv.Amount)
	assert.Equal(t, "Premium Plan", inv.Plan)
	assert.Equal(t, models.InvestmentStatusActive, inv.Status)
	assert.Equal(t, float64(2400), inv.ExpectedReturn)
}

func TestCreateTransaction_IDPatternAndAppend(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	id, err := s.CreateTransaction(ctx, CreateTransactionParams{
		Type:        models.TransactionTypeDeposit,
		Amount:      100,
		Description: "x",
	})
	require.NoError(t, err)
	assert.Regexp(t, txnIDPattern, id)

	recorded := s.RecordedTransactions(ctx)
	require.Len(t, recorded, 1)
	assert.Equal(t, id, recorded[0].ID)
	assert.Equal(t, models.TransactionStatusPending, recorded[0].Status)
	assert.Equal(t, "1", recorded[0].UserID)

	// the canned read path stays independent of recorded writes
	canned, err := s.UserTransactions(ctx, "")
	require.NoError(t, err)
	require.Len(t, canned, 2)
}

func TestCreateTransaction_ExplicitStatusKept(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.CreateTransaction(context.Background(), CreateTransactionParams{
		Type:   models.TransactionTypeWithdrawal,
		Amount: 50,
		Status: models.TransactionStatusCompleted,
	})
	require.NoError(t, err)

	recorded := s.RecordedTransactions(context.Background())
	require.Len(t, recorded, 1)
	assert.Equal(t, models.TransactionStatusCompleted, recorded[0].Status)
}

func TestCreateTransaction_UsesCurrentUserID(t *testing.T) {
	s, sess := newTestService(t)
	ctx := context.Background()

	res := sess.Register(ctx, session.RegisterData{Email: "a@b.c", FirstName: "A", LastName: "B"})
	require.True(t, res.Success)

	_, err := s.CreateTransaction(ctx, CreateTransactionParams{
		Type:   models.TransactionTypeDeposit,
		Amount: 10,
	})
	require.NoError(t, err)

	recorded := s.RecordedTransactions(ctx)
	require.Len(t, recorded, 1)
	assert.Equal(t, res.User.ID, recorded[0].UserID)
}

func TestCreateInvestment_IDPatternAndStatus(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	id, err := s.CreateInvestment(ctx, CreateInvestmentParams{
		Amount:         2000,
		Plan:           "Premium Plan",
		ExpectedReturn: 2400,
	})
	require.NoError(t, err)
	assert.Regexp(t, invIDPattern, id)

	recorded := s.RecordedInvestments(ctx)
	require.Len(t, recorded, 1)
	assert.Equal(t, models.InvestmentStatusActive, recorded[0].Status)
}

func TestCreateTransaction_UniqueIDs(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := s.CreateTransaction(ctx, CreateTransactionParams{
			Type:   models.TransactionTypeDeposit,
			Amount: 1,
		})
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestAddTransaction_AssignsIDAndTimestamp(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	tx, err := s.AddTransaction(ctx, models.Transaction{
		UserID: "u-1",
		Type:   models.TransactionTypeDeposit,
		Amount: 42,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())

	recorded := s.RecordedTransactions(ctx)
	require.Len(t, recorded, 1)
}
