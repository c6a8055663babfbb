package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	if m := a.mode(); m != "" {
		return fmt.Sprintf("(%s)", m)
	}
	return ""
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	if s := a.getStatus(); s != "" {
		return fmt.Sprintf("dir %s>", s)
	}
	return "dir>"
}

// Root performs the initial load and runs the REPL.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the user directory CLI (type 'help' for commands)")

	a.checkOnline(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	if err := a.directory.Load(ctx); err != nil {
		log.Printf("initial load: %v", err)
	}
	a.render()

	runREPL(ctx, a, a.prompt, a.scanner)
}
