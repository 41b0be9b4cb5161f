// Package identity validates inbound bearer credentials against the content
// store's identity provider and carries the verified caller through the
// request context.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/vault"
)

// Identity is a verified caller. Credential is the delegated bearer
// credential downstream content-store calls must be authorized with; it is
// request-scoped and must never be logged or persisted.
type Identity struct {
	UserID     string
	Username   string
	Attributes *vault.Profile
	Credential string
}

// Resolver resolves a credential into the identity it belongs to. The
// production resolver is a vault.Client bound to that credential.
type Resolver interface {
	ReadCurrentUser(ctx context.Context) (*vault.User, error)
}

// ResolverFactory builds a Resolver for one credential.
type ResolverFactory func(credential string) Resolver

// Gateway authenticates inbound requests. It performs no retries: an
// authentication failure terminates the request before any state is touched.
type Gateway struct {
	factory ResolverFactory
}

// NewGateway builds a Gateway that resolves credentials through the given
// vault client.
func NewGateway(base *vault.Client) *Gateway {
	return &Gateway{factory: func(credential string) Resolver {
		return base.WithCredential(credential)
	}}
}

// NewGatewayWithFactory builds a Gateway with a custom resolver factory.
// Used by tests.
func NewGatewayWithFactory(factory ResolverFactory) *Gateway {
	return &Gateway{factory: factory}
}

// Authenticate exchanges a bearer credential for the caller's identity.
// Returns common.ErrUnauthorized when the provider rejects the credential
// and a wrapped transport error when the provider is unreachable.
func (g *Gateway) Authenticate(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, common.ErrUnauthorized
	}

	user, err := g.factory(credential).ReadCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("identity provider: %w", err)
	}

	return &Identity{
		UserID:     user.ID,
		Username:   user.Username,
		Attributes: user.Attributes,
		Credential: credential,
	}, nil
}

type ctxKey struct{}

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the verified identity attached by the auth middleware.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok
}
