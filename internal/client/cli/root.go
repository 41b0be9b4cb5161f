package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	s := a.session.Username
	if a.session.Expired() {
		s += " session-expired"
	}
	return fmt.Sprintf("(%s) ", s)
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to splitchat CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
