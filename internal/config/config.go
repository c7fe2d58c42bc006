// Package config holds runtime settings for the mock backend,
// including defaults and an optional JSON overlay.
//
// Every stubbed business outcome lives here as a named field rather than an
// inline literal: the locked account balance, the default profile values
// stamped onto synthesized users, and the canned operator copy returned by
// the withdrawal and deposit paths. Swapping the mock for a real backend
// starts with this struct.
package config

import "time"

// Config holds runtime settings for the mock backend.
//
// Fields:
//   - StorageDSN: SQLite DSN for the durable key-value store (":memory:" works).
//   - LockedBalance: the balance every user reads back, regardless of writes.
//   - DefaultPhone / DefaultCountry / DefaultRole: profile defaults stamped
//     onto users synthesized by login.
//   - WithdrawalNotice: operator copy returned by the always-failing
//     withdrawal path.
//   - DepositNotice: confirmation copy returned by the deposit path.
//   - AutoApproveNote: admin note attached to auto-approved verifications.
//   - SecretKey: HMAC secret for signing mock reset tokens (HS256).
//   - ResetTokenValidity: lifetime of mock reset tokens.
//   - SimulatedLatency: artificial delay on password-reset style operations.
type Config struct {
	StorageDSN         string
	LockedBalance      float64
	DefaultPhone       string
	DefaultCountry     string
	DefaultRole        string
	WithdrawalNotice   string
	DepositNotice      string
	AutoApproveNote    string
	SecretKey          string
	ResetTokenValidity time.Duration
	SimulatedLatency   time.Duration
}

// defaultWithdrawalNotice is the stock upsell copy shown instead of a real
// withdrawal. It is business copy, not logic; override it via the JSON
// overlay when the wording changes.
const defaultWithdrawalNotice = `🚫 ✨ SERVIÇOS PREMIUM ✨ 🚫

💎 Para desbloquear nossos serviços premium de saque, é necessário aprimorar sua conta com um depósito mínimo de R$ 700,00.

🔐 Esta medida de segurança garante o processamento otimizado das transações e protege seus ativos valiosos.

💰 Após a conclusão, você terá acesso instantâneo a todos os métodos de saque, incluindo PIX, TED e transferências internacionais.

🎯 Obrigado por escolher nossa plataforma financeira exclusiva!`

const defaultDepositNotice = "Deposit request submitted successfully. Your balance will be updated after confirmation."

// LoadDefaults populates Config with the stock demo values.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.StorageDSN = "mxtm.db"
	c.LockedBalance = 5000
	c.DefaultPhone = "+55 11 99999-9999"
	c.DefaultCountry = "BR"
	c.DefaultRole = "user"
	c.WithdrawalNotice = defaultWithdrawalNotice
	c.DepositNotice = defaultDepositNotice
	c.AutoApproveNote = "Automatically approved by system"
	c.SecretKey = "secretKey"
	c.ResetTokenValidity = 15 * time.Minute
	c.SimulatedLatency = 1 * time.Second
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from an optional JSON file. An empty path skips the overlay.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
