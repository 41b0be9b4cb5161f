package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/splitchat/splitchat/internal/client/chat"
	"github.com/splitchat/splitchat/internal/client/chatserver"
	"github.com/splitchat/splitchat/internal/client/config"
	"github.com/splitchat/splitchat/internal/client/session"
	"github.com/splitchat/splitchat/internal/vault"
)

// conversations is the slice of the coordinator the REPL commands need.
type conversations interface {
	Send(ctx context.Context, toUserID, text string) (string, error)
	GetConversation(ctx context.Context, otherUserID string) ([]*chat.Message, error)
}

// contactsLister lists the users known to the identity provider.
type contactsLister interface {
	ListUsers(ctx context.Context) ([]*vault.User, error)
}

type App struct {
	config    *config.Config
	vaultBase *vault.Client
	server    *chatserver.Client
	session   *session.Session
	conv      conversations
	directory contactsLister
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config:    c,
		vaultBase: vault.New(c.VaultEndpoint, ""),
		server:    chatserver.New(c.ServerEndpointAddr),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && !a.session.Expired()
}

// startSession derives the per-credential clients once a login succeeded.
func (a *App) startSession(user *vault.User) {
	a.session = session.New(user.ID, user.Username, user.AccessToken)

	store := a.vaultBase.WithCredential(user.AccessToken)
	index := a.server.WithCredential(user.AccessToken)
	a.conv = chat.NewCoordinator(store, index, a.config.ContentContainerID)
	a.directory = store
}

func (a *App) endSession() {
	a.session = nil
	a.conv = nil
	a.directory = nil
}
