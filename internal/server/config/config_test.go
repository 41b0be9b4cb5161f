package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.EndpointAddr)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.VaultEndpoint)
	assert.Equal(t, 10*time.Second, cfg.NotifyTimeout)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("SPLITCHAT_ADDR", ":9999")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC-test")
	t.Setenv("SPLITCHAT_NOTIFY_TIMEOUT", "3s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "AC-test", cfg.TwilioAccountSID)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	want := cfg.DatabaseDSN

	parseEnv(cfg)
	assert.Equal(t, want, cfg.DatabaseDSN)
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SPLITCHAT_ADDR", ":7777")

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-a", ":8888"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, ":8888", cfg.EndpointAddr)
}
