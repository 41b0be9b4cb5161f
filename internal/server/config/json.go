package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/splitchat/splitchat/internal/flagx"
	"github.com/splitchat/splitchat/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "10s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr         string         `json:"endpoint_addr"`
	DatabaseDSN          string         `json:"database_dsn"`
	VaultEndpoint        string         `json:"vault_endpoint"`
	CORSOrigin           string         `json:"cors_origin"`
	ConversationLinkBase string         `json:"conversation_link_base"`
	TwilioAccountSID     string         `json:"twilio_account_sid"`
	TwilioKeySID         string         `json:"twilio_key_sid"`
	TwilioKeySecret      string         `json:"twilio_key_secret"`
	TwilioFromNumber     string         `json:"twilio_from_number"`
	NotifyTimeout        timex.Duration `json:"notify_timeout"`
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

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.VaultEndpoint != "" {
		config.VaultEndpoint = c.VaultEndpoint
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
	if c.ConversationLinkBase != "" {
		config.ConversationLinkBase = c.ConversationLinkBase
	}
	if c.TwilioAccountSID != "" {
		config.TwilioAccountSID = c.TwilioAccountSID
	}
	if c.TwilioKeySID != "" {
		config.TwilioKeySID = c.TwilioKeySID
	}
	if c.TwilioKeySecret != "" {
		config.TwilioKeySecret = c.TwilioKeySecret
	}
	if c.TwilioFromNumber != "" {
		config.TwilioFromNumber = c.TwilioFromNumber
	}
	if c.NotifyTimeout.Duration != 0 {
		config.NotifyTimeout = time.Duration(c.NotifyTimeout.Duration)
	}
}
