package vault

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// User is an identity record held by the store. AccessToken is only set on
// the user returned by Login; Attributes is only set when the caller asked
// for a full representation.
type User struct {
	ID          string
	Username    string
	AccountID   string
	AccessToken string
	Attributes  *Profile
}

// wireUser mirrors the store's user representation. Attributes travel
// base64-JSON encoded like documents.
type wireUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountID   string `json:"account_id"`
	AccessToken string `json:"access_token"`
	Attributes  string `json:"attributes"`
}

func (w *wireUser) toUser() (*User, error) {
	u := &User{
		ID:          w.ID,
		Username:    w.Username,
		AccountID:   w.AccountID,
		AccessToken: w.AccessToken,
	}
	if w.Attributes != "" {
		raw, err := decodeDocument(w.Attributes)
		if err != nil {
			return nil, fmt.Errorf("user %s attributes: %w", w.ID, err)
		}
		profile, err := DecodeProfile(raw)
		if err != nil {
			return nil, fmt.Errorf("user %s attributes: %w", w.ID, err)
		}
		u.Attributes = profile
	}
	return u, nil
}

// Login exchanges account id, username and password for an identity with a
// fresh access token. It is the only call made without a credential.
func (c *Client) Login(ctx context.Context, accountID, username, password string, notValidAfter time.Time) (*User, error) {
	body := map[string]string{
		"account_id":      accountID,
		"username":        username,
		"password":        password,
		"not_valid_after": notValidAfter.UTC().Format(time.RFC3339),
	}
	var resp struct {
		User wireUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &resp, false); err != nil {
		return nil, err
	}
	return resp.User.toUser()
}

// ReadCurrentUser resolves the client's credential into the identity it
// belongs to, including decoded profile attributes. This is the identity
// provider exchange behind every authenticated request.
func (c *Client) ReadCurrentUser(ctx context.Context) (*User, error) {
	var resp struct {
		User wireUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/auth/me?full=true", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.User.toUser()
}

// CreateUser registers a new identity with profile attributes. Must be
// called with the registration credential, not a user credential.
func (c *Client) CreateUser(ctx context.Context, username, password string, profile *Profile, groupIDs []string) (*User, error) {
	attributes, err := encodeDocument(profile)
	if err != nil {
		return nil, err
	}
	body := map[string]string{
		"username":   username,
		"password":   password,
		"attributes": attributes,
		"group_ids":  strings.Join(groupIDs, ","),
	}
	var resp struct {
		User wireUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/users?full=true", body, &resp, false); err != nil {
		return nil, err
	}
	return resp.User.toUser()
}

// ListUsers returns every identity visible to the credential, with decoded
// profile attributes. Backs the contact list.
func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	var resp struct {
		Users []wireUser `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/users?full=true", nil, &resp, true); err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(resp.Users))
	for i := range resp.Users {
		u, err := resp.Users[i].toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
