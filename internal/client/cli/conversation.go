package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Open fetches and prints the conversation with the given user, oldest
// message first.
func (a *App) Open(ctx context.Context, otherUserID string) error {
	messages, err := a.conv.GetConversation(ctx, otherUserID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(messages) == 0 {
		fmt.Println("No messages yet")
		return nil
	}
	for _, m := range messages {
		who := m.FromUserID
		if who == a.session.UserID {
			who = "me"
		}
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04"), who, m.Text)
	}
	return nil
}

// Send prompts for a message body and sends it to the given user.
func (a *App) Send(ctx context.Context, otherUserID string) error {
	text, err := getMultiline(a.reader, "Enter message", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Println("Empty message, nothing sent")
		return nil
	}

	if _, err := a.conv.Send(ctx, otherUserID, text); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Sent")
	return nil
}

// getMultiline is an indirection used to facilitate testing.
var getMultiline = GetMultiline
