package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/notify"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.authService.CurrentUser(); u != nil {
		s = u.Email + " "
	}
	s += a.currentMode()
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

// Root runs the REPL front-end until the user quits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to GophAuth (type 'help' for commands)")
	if u := a.authService.CurrentUser(); u != nil {
		printlnFn("Welcome back,", u.DisplayName())
	}

	a.notifier.OnToast(func(t notify.Toast) {
		printlnFn(notify.Line(t))
	})

	edges, stop := a.loading.Subscribe()
	defer stop()
	go spin(ctx, edges, a.out)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
