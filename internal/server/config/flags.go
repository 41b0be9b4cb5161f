package config

import (
	"flag"
	"os"
	"time"

	"github.com/splitchat/splitchat/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-v string   content store base URL
//	-o string   allowed CORS origin
//	-l string   conversation link base for notification texts
//	-n int      notification timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - The timeout flag is accepted as an integer in seconds and converted
//     to a time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-v", "-o", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.VaultEndpoint, "v", config.VaultEndpoint, "content store endpoint")
	fs.StringVar(&config.CORSOrigin, "o", config.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&config.ConversationLinkBase, "l", config.ConversationLinkBase, "conversation link base")

	notifyTimeout := fs.Int("n", int(config.NotifyTimeout.Seconds()), "notification timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.NotifyTimeout = time.Duration(*notifyTimeout) * time.Second
}
