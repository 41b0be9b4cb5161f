package config

import (
	"flag"
	"os"

	"github.com/splitchat/splitchat/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   index server base URL
//	-v string   content store base URL
//	-a string   content store account id
//	-t string   message document container id
//	-g string   group id for new users
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The
// registration key is deliberately not a flag; pass it via environment or
// JSON so it does not show up in shell history.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-v", "-a", "-t", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "s", config.ServerEndpointAddr, "index server base URL")
	fs.StringVar(&config.VaultEndpoint, "v", config.VaultEndpoint, "content store endpoint")
	fs.StringVar(&config.AccountID, "a", config.AccountID, "content store account id")
	fs.StringVar(&config.ContentContainerID, "t", config.ContentContainerID, "message container id")
	fs.StringVar(&config.UserGroupID, "g", config.UserGroupID, "user group id")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
