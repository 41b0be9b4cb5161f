package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overlay(t *testing.T) {
	path := writeTempJSON(t, `{
		"endpoint_addr": ":4000",
		"database_dsn": "postgres://json",
		"twilio_from_number": "+15550001234",
		"notify_timeout": "5s"
	}`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddr)
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, "+15550001234", cfg.TwilioFromNumber)
	assert.Equal(t, 5*time.Second, cfg.NotifyTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempJSON(t, `{"endpoint_addr": ":4000"}`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	wantDSN := cfg.DatabaseDSN
	parseJson(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddr)
	assert.Equal(t, wantDSN, cfg.DatabaseDSN)
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg
	parseJson(cfg)

	assert.Equal(t, want, *cfg)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
