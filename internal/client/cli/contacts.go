package cli

import (
	"context"
	"fmt"
	"log"
)

// Contacts lists the users known to the identity provider, excluding the
// logged-in user. The printed ids are what open/send expect.
func (a *App) Contacts(ctx context.Context) error {
	users, err := a.directory.ListUsers(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range users {
		if u.ID == a.session.UserID {
			continue
		}
		name := ""
		if u.Attributes != nil && u.Attributes.Name != "" {
			name = " (" + u.Attributes.Name + ")"
		}
		fmt.Printf("%s  %s%s\n", u.ID, u.Username, name)
	}
	return nil
}
