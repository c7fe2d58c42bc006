// Package session maintains the single "current user" of the running
// process and mirrors it to the durable store.
//
// The manager enforces the demo-mode account invariant on every read and
// write path: the balance a caller observes is always the configured locked
// amount, and the verification flag is always true. Whichever way a caller
// reaches a User, it sees the same coerced snapshot; that predictability is
// the entire point of the mock.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/auth"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/common"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/storage"
)

// loginUserID is the fixed id stamped on users synthesized by Login.
const loginUserID = "1"

// RegisterData is the profile supplied at registration. The password is
// accepted for interface parity and never checked or stored.
type RegisterData struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Country   string
}

// AuthResult is the outcome of Login and Register.
type AuthResult struct {
	Success bool
	User    *models.User
	Message string
}

// UserUpdate is a partial update of the current user. Nil fields are left
// untouched. A nil Balance is replaced with the locked amount; IsVerified
// is forced regardless of input.
type UserUpdate struct {
	Email      *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Country    *string
	Balance    *float64
	Status     *models.UserStatus
	IsVerified *bool
	Role       *string
	LastLogin  *time.Time
}

// Manager holds at most one authenticated user per process. All access to
// the slot goes through the mutex; the store mirrors every create/update.
type Manager struct {
	mu      sync.Mutex
	current *models.User
	store   storage.Store
	cfg     *config.Config
	logger  logging.Logger
}

// NewManager returns a Manager backed by the given store.
func NewManager(store storage.Store, cfg *config.Config, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		cfg:    cfg,
		logger: logger.With("component", "session"),
	}
}

// Login synthesizes a user from the email and makes it current. The
// password is never validated; authentication always succeeds.
func (m *Manager) Login(ctx context.Context, email, password string) AuthResult {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	now := time.Now()
	user := &models.User{
		ID:         loginUserID,
		Email:      email,
		FirstName:  local,
		LastName:   "User",
		Name:       models.DisplayName(local, "User"),
		Phone:      m.cfg.DefaultPhone,
		Country:    m.cfg.DefaultCountry,
		Balance:    m.cfg.LockedBalance,
		Status:     models.UserStatusActive,
		IsVerified: true,
		Role:       m.cfg.DefaultRole,
		CreatedAt:  now,
		LastLogin:  &now,
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()

	m.save(ctx, user)
	m.logger.Info(ctx, "user logged in", "email", email)

	return AuthResult{Success: true, User: user}
}

// Register synthesizes a user from the supplied profile fields and makes it
// current. Registration always succeeds.
func (m *Manager) Register(ctx context.Context, data RegisterData) AuthResult {
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      data.Email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Name:       models.DisplayName(data.FirstName, data.LastName),
		Phone:      data.Phone,
		Country:    data.Country,
		Balance:    m.cfg.LockedBalance,
		Status:     models.UserStatusActive,
		IsVerified: true,
		Role:       m.cfg.DefaultRole,
		CreatedAt:  time.Now(),
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()

	m.save(ctx, user)
	m.logger.Info(ctx, "user registered", "email", data.Email)

	return AuthResult{Success: true, User: user}
}

// CurrentUser returns the current user, loading it from the store when the
// in-memory slot is empty. Absent sessions yield (nil, nil). The returned
// record is always coerced to the locked balance and verified state, even
// when the stored copy was edited to different values.
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.coerce(m.current)
		return m.current, nil
	}

	user, err := m.loadStored(ctx)
	if err != nil {
		m.logger.Warn(ctx, "failed to load stored user", "error", err)
		return nil, nil
	}
	if user == nil {
		return nil, nil
	}

	m.coerce(user)
	m.current = user
	return user, nil
}

// Current returns the in-memory current user without touching the store.
// Domain operations use it to answer "is anyone logged in right now".
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		m.coerce(m.current)
	}
	return m.current
}

// UpdateCurrentUser merges the partial update into the current user and
// persists the result. No-op when nobody is logged in.
func (m *Manager) UpdateCurrentUser(ctx context.Context, upd UserUpdate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}

	if upd.Email != nil {
		m.current.Email = *upd.Email
	}
	if upd.FirstName != nil {
		m.current.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		m.current.LastName = *upd.LastName
	}
	if upd.FirstName != nil || upd.LastName != nil {
		m.current.Name = models.DisplayName(m.current.FirstName, m.current.LastName)
	}
	if upd.Phone != nil {
		m.current.Phone = *upd.Phone
	}
	if upd.Country != nil {
		m.current.Country = *upd.Country
	}
	if upd.Status != nil {
		m.current.Status = *upd.Status
	}
	if upd.Role != nil {
		m.current.Role = *upd.Role
	}
	if upd.LastLogin != nil {
		m.current.LastLogin = upd.LastLogin
	}

	// Balance updates are honored only when explicit; everything else
	// snaps back to the locked amount. Verification can never be revoked.
	if upd.Balance != nil {
		m.current.Balance = *upd.Balance
	} else {
		m.current.Balance = m.cfg.LockedBalance
	}
	m.current.IsVerified = true

	m.save(ctx, m.current)
}

// Logout clears the in-memory slot and removes the durable copy.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Delete(ctx, storage.KeyCurrentUser); err != nil {
		m.logger.Warn(ctx, "failed to clear stored user", "error", err)
	}
}

// UserByEmail returns the canned profile for any email, the same shape
// Login would synthesize. It never consults state.
func (m *Manager) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	return &models.User{
		ID:         loginUserID,
		Email:      email,
		FirstName:  local,
		LastName:   "User",
		Name:       models.DisplayName(local, "User"),
		Phone:      m.cfg.DefaultPhone,
		Country:    m.cfg.DefaultCountry,
		Balance:    m.cfg.LockedBalance,
		Status:     models.UserStatusActive,
		IsVerified: true,
		Role:       m.cfg.DefaultRole,
		CreatedAt:  time.Now(),
	}, nil
}

// UserBalance reports the locked amount for any user id.
func (m *Manager) UserBalance(ctx context.Context, userID string) (float64, error) {
	return m.cfg.LockedBalance, nil
}

// UpdateUserBalance accepts and discards a balance change.
func (m *Manager) UpdateUserBalance(ctx context.Context, userID string, balance float64) error {
	return nil
}

// AddProfit accepts and discards a profit credit.
func (m *Manager) AddProfit(ctx context.Context, userID string, amount float64) error {
	return nil
}

// DeductFromBalance accepts and discards a balance deduction.
func (m *Manager) DeductFromBalance(ctx context.Context, userID string, amount float64) error {
	return nil
}

// UpdateUserStatus accepts and discards a status change.
func (m *Manager) UpdateUserStatus(ctx context.Context, userID string, status models.UserStatus) error {
	return nil
}

// ResetPassword simulates a password-reset request: it waits the configured
// latency and returns a signed reset token for the email. No mail is sent.
func (m *Manager) ResetPassword(ctx context.Context, email string) (string, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return "", err
	}
	return auth.GenerateResetToken(email, []byte(m.cfg.SecretKey), m.cfg.ResetTokenValidity)
}

// UpdatePassword simulates completing a password reset. The token must
// verify; the new password itself is discarded.
func (m *Manager) UpdatePassword(ctx context.Context, token, newPassword string) error {
	if err := m.simulateLatency(ctx); err != nil {
		return err
	}
	if _, err := auth.EmailFromResetToken(token, []byte(m.cfg.SecretKey)); err != nil {
		return common.ErrInvalidToken
	}
	return nil
}

// coerce applies the demo-mode invariant in place.
func (m *Manager) coerce(u *models.User) {
	u.Balance = m.cfg.LockedBalance
	u.IsVerified = true
}

// save mirrors the user to the durable store. Persistence failures are
// logged and swallowed: the in-memory session stays authoritative and the
// caller's operation still succeeds.
func (m *Manager) save(ctx context.Context, user *models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		m.logger.Error(ctx, "failed to serialize user", "error", err)
		return
	}
	if err := m.store.Set(ctx, storage.KeyCurrentUser, raw); err != nil {
		m.logger.Warn(ctx, "failed to save user", "error", err)
	}
}

// loadStored reads the mirrored user from the store. A stored record with a
// zero balance is backfilled with the locked amount.
func (m *Manager) loadStored(ctx context.Context) (*models.User, error) {
	raw, err := m.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil || raw == nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}

	if user.Balance == 0 {
		user.Balance = m.cfg.LockedBalance
	}
	user.IsVerified = true

	return &user, nil
}

func (m *Manager) simulateLatency(ctx context.Context) error {
	if m.cfg.SimulatedLatency <= 0 {
		return nil
	}
	t := time.NewTimer(m.cfg.SimulatedLatency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
