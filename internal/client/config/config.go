// Package config handles configuration for the chat CLI client,
// including defaults, environment overlay, JSON overlay, and command-line
// flags.
package config

import "time"

// Config holds runtime settings for the splitchat CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the message index server.
//   - VaultEndpoint: base URL of the content store / identity provider.
//   - AccountID: content store account the users belong to.
//   - ContentContainerID: container (vault) that holds message documents.
//   - UserGroupID: group new users are added to at registration.
//   - RegistrationKey: store API key used only to create accounts; never
//     used for regular requests.
//   - SessionTTL: requested lifetime for login access tokens.
type Config struct {
	ServerEndpointAddr string
	VaultEndpoint      string
	AccountID          string
	ContentContainerID string
	UserGroupID        string
	RegistrationKey    string
	SessionTTL         time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.VaultEndpoint = "https://api.truevault.com"
	c.SessionTTL = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (.env aware), from an optional JSON file and finally
// from command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
