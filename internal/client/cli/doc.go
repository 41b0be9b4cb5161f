// Package cli provides the interactive splitchat command-line client.
//
// It wires configuration, the content store client, the index server client
// and an interactive REPL. Typical flow: prompt for credentials, then read
// and send messages in two-party conversations.
//
// Key features:
//   - Register / Login / Logout
//   - List contacts known to the identity provider
//   - Open a conversation (pointer list joined with content documents)
//   - Send a message (content written first, pointer appended after)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
