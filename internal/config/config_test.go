package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, float64(5000), cfg.LockedBalance)
	assert.Equal(t, "BR", cfg.DefaultCountry)
	assert.Equal(t, "user", cfg.DefaultRole)
	assert.Contains(t, cfg.WithdrawalNotice, "SERVIÇOS PREMIUM")
	assert.NotEmpty(t, cfg.DepositNotice)
	assert.Equal(t, "Automatically approved by system", cfg.AutoApproveNote)
	assert.Equal(t, time.Second, cfg.SimulatedLatency)
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, float64(5000), cfg.LockedBalance)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"locked_balance": 7500,
		"default_country": "PT",
		"simulated_latency": "10ms"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float64(7500), cfg.LockedBalance)
	assert.Equal(t, "PT", cfg.DefaultCountry)
	assert.Equal(t, 10*time.Millisecond, cfg.SimulatedLatency)

	// untouched fields keep their defaults
	assert.Equal(t, "+55 11 99999-9999", cfg.DefaultPhone)
	assert.Contains(t, cfg.WithdrawalNotice, "SERVIÇOS PREMIUM")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
