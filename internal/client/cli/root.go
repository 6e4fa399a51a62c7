package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if user, active := a.sessions.Current(); active {
		s = string(user.Name) + " "
	}
	if mode := a.currentMode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Valens CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	// Resume the cached session if there is one; a fresh login is only
	// needed on the first run or after a logout.
	_ = a.Resume(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}
