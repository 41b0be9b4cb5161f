package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first if present (ok if missing in prod).
//
// Recognized variables:
//
//	SPLITCHAT_ADDR            HTTP bind address
//	SPLITCHAT_DATABASE_DSN    PostgreSQL DSN
//	SPLITCHAT_VAULT_ENDPOINT  content store base URL
//	SPLITCHAT_CORS_ORIGIN     allowed browser origin
//	SPLITCHAT_LINK_BASE       base URL used in notification texts
//	TWILIO_ACCOUNT_SID        SMS bridge account sid
//	TWILIO_KEY_SID            SMS bridge key sid
//	TWILIO_KEY_SECRET         SMS bridge key secret
//	TWILIO_FROM_NUMBER        SMS sender number
//	SPLITCHAT_NOTIFY_TIMEOUT  notification timeout (duration string)
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("SPLITCHAT_ADDR", &config.EndpointAddr)
	setIfPresent("SPLITCHAT_DATABASE_DSN", &config.DatabaseDSN)
	setIfPresent("SPLITCHAT_VAULT_ENDPOINT", &config.VaultEndpoint)
	setIfPresent("SPLITCHAT_CORS_ORIGIN", &config.CORSOrigin)
	setIfPresent("SPLITCHAT_LINK_BASE", &config.ConversationLinkBase)
	setIfPresent("TWILIO_ACCOUNT_SID", &config.TwilioAccountSID)
	setIfPresent("TWILIO_KEY_SID", &config.TwilioKeySID)
	setIfPresent("TWILIO_KEY_SECRET", &config.TwilioKeySecret)
	setIfPresent("TWILIO_FROM_NUMBER", &config.TwilioFromNumber)

	if v := os.Getenv("SPLITCHAT_NOTIFY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.NotifyTimeout = d
		}
	}
}
