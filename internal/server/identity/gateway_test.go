package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/vault"
)

type fakeResolver struct {
	user  *vault.User
	err   error
	calls int
}

func (f *fakeResolver) ReadCurrentUser(ctx context.Context) (*vault.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestAuthenticate_Success(t *testing.T) {
	resolver := &fakeResolver{user: &vault.User{
		ID:         "u-alice",
		Username:   "alice",
		Attributes: &vault.Profile{Name: "Alice"},
	}}
	var gotCredential string
	g := NewGatewayWithFactory(func(credential string) Resolver {
		gotCredential = credential
		return resolver
	})

	id, err := g.Authenticate(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-alice", id.UserID)
	assert.Equal(t, "tok-1", id.Credential, "delegated credential must match the inbound one")
	assert.Equal(t, "tok-1", gotCredential)
	assert.Equal(t, 1, resolver.calls)
}

func TestAuthenticate_EmptyCredential(t *testing.T) {
	resolver := &fakeResolver{}
	g := NewGatewayWithFactory(func(string) Resolver { return resolver })

	_, err := g.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Zero(t, resolver.calls, "no provider call for an absent credential")
}

func TestAuthenticate_ProviderRejects(t *testing.T) {
	g := NewGatewayWithFactory(func(string) Resolver {
		return &fakeResolver{err: common.ErrUnauthorized}
	})

	_, err := g.Authenticate(context.Background(), "expired")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthenticate_ProviderUnreachable(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	g := NewGatewayWithFactory(func(string) Resolver {
		return &fakeResolver{err: transportErr}
	})

	_, err := g.Authenticate(context.Background(), "tok-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrUnauthorized, "transport failure is not a credential rejection")
	assert.ErrorIs(t, err, transportErr)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	id := &Identity{UserID: "u-1"}
	ctx := WithIdentity(context.Background(), id)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, id, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
