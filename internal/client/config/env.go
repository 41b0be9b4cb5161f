package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first if present.
//
// Recognized variables:
//
//	SPLITCHAT_SERVER_ADDR       index server base URL
//	SPLITCHAT_VAULT_ENDPOINT    content store base URL
//	SPLITCHAT_ACCOUNT_ID        content store account id
//	SPLITCHAT_CONTAINER_ID      message document container id
//	SPLITCHAT_USER_GROUP_ID     group id for new users
//	SPLITCHAT_REGISTRATION_KEY  API key used to create accounts
//	SPLITCHAT_SESSION_TTL       requested token lifetime (duration string)
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("SPLITCHAT_SERVER_ADDR", &config.ServerEndpointAddr)
	setIfPresent("SPLITCHAT_VAULT_ENDPOINT", &config.VaultEndpoint)
	setIfPresent("SPLITCHAT_ACCOUNT_ID", &config.AccountID)
	setIfPresent("SPLITCHAT_CONTAINER_ID", &config.ContentContainerID)
	setIfPresent("SPLITCHAT_USER_GROUP_ID", &config.UserGroupID)
	setIfPresent("SPLITCHAT_REGISTRATION_KEY", &config.RegistrationKey)

	if v := os.Getenv("SPLITCHAT_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTTL = d
		}
	}
}
