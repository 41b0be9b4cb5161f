package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/splitchat/splitchat/internal/flagx"
	"github.com/splitchat/splitchat/internal/timex"
)

// JsonConfig is the JSON-file counterpart of Config. It uses timex.Duration
// for interval fields, which allows parsing both string values such as "24h"
// and integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	VaultEndpoint      string         `json:"vault_endpoint"`
	AccountID          string         `json:"account_id"`
	ContentContainerID string         `json:"content_container_id"`
	UserGroupID        string         `json:"user_group_id"`
	RegistrationKey    string         `json:"registration_key"`
	SessionTTL         timex.Duration `json:"session_ttl"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.VaultEndpoint != "" {
		config.VaultEndpoint = c.VaultEndpoint
	}
	if c.AccountID != "" {
		config.AccountID = c.AccountID
	}
	if c.ContentContainerID != "" {
		config.ContentContainerID = c.ContentContainerID
	}
	if c.UserGroupID != "" {
		config.UserGroupID = c.UserGroupID
	}
	if c.RegistrationKey != "" {
		config.RegistrationKey = c.RegistrationKey
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = time.Duration(c.SessionTTL.Duration)
	}
}
