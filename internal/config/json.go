package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, set fields are copied into the
// runtime Config struct. Pointer fields distinguish "absent" from "zero",
// so a partial overlay never clobbers a default.
type JsonConfig struct {
	StorageDSN         *string         `json:"storage_dsn"`
	LockedBalance      *float64        `json:"locked_balance"`
	DefaultPhone       *string         `json:"default_phone"`
	DefaultCountry     *string         `json:"default_country"`
	DefaultRole        *string         `json:"default_role"`
	WithdrawalNotice   *string         `json:"withdrawal_notice"`
	DepositNotice      *string         `json:"deposit_notice"`
	AutoApproveNote    *string         `json:"auto_approve_note"`
	SecretKey          *string         `json:"secret_key"`
	ResetTokenValidity *timex.Duration `json:"reset_token_validity"`
	SimulatedLatency   *timex.Duration `json:"simulated_latency"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. An empty path is a no-op. The caller is expected to have
// applied defaults first.
func parseJson(config *Config, path string) error {

	// nothing to load
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if c.StorageDSN != nil {
		config.StorageDSN = *c.StorageDSN
	}
	if c.LockedBalance != nil {
		config.LockedBalance = *c.LockedBalance
	}
	if c.DefaultPhone != nil {
		config.DefaultPhone = *c.DefaultPhone
	}
	if c.DefaultCountry != nil {
		config.DefaultCountry = *c.DefaultCountry
	}
	if c.DefaultRole != nil {
		config.DefaultRole = *c.DefaultRole
	}
	if c.WithdrawalNotice != nil {
		config.WithdrawalNotice = *c.WithdrawalNotice
	}
	if c.DepositNotice != nil {
		config.DepositNotice = *c.DepositNotice
	}
	if c.AutoApproveNote != nil {
		config.AutoApproveNote = *c.AutoApproveNote
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.ResetTokenValidity != nil {
		config.ResetTokenValidity = c.ResetTokenValidity.Duration
	}
	if c.SimulatedLatency != nil {
		config.SimulatedLatency = c.SimulatedLatency.Duration
	}

	return nil
}
