package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/vault"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, password and an optional profile and
// creates the account at the identity provider. Account creation uses the
// dedicated registration key; the key is never reused for anything else.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if a.config.RegistrationKey == "" {
		return fmt.Errorf("registration is not configured on this client")
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number for alerts (optional)", os.Stdout)
	if err != nil {
		return err
	}

	var profile *vault.Profile
	if name != "" || phone != "" {
		profile = &vault.Profile{Name: name, PhoneNumber: phone}
	}

	var groups []string
	if a.config.UserGroupID != "" {
		groups = []string{a.config.UserGroupID}
	}

	registrar := a.vaultBase.WithCredential(a.config.RegistrationKey)
	if _, err := registrar.CreateUser(ctx, userName, string(password), profile, groups); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and authenticates against the identity
// provider. On success the access token is held in memory only and the
// per-session clients are derived from it.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	notValidAfter := time.Now().Add(a.config.SessionTTL)
	user, err := a.vaultBase.Login(ctx, a.config.AccountID, userName, string(password), notValidAfter)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.startSession(user)
	log.Printf("Login successful")
	return nil
}

// Logout drops the in-memory session and its derived clients.
func (a *App) Logout(ctx context.Context) error {
	a.endSession()
	fmt.Println("Logged out")
	return nil
}
