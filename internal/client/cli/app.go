package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/client/client"
	"github.com/dmitrijs2005/userdirectory/internal/client/config"
	"github.com/dmitrijs2005/userdirectory/internal/client/view"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	directory   *view.Directory
	pinger      client.Pinger
	closers     []io.Closer
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool

	mu   sync.Mutex
	Mode Mode
}

func NewApp(c *config.Config) (*App, error) {

	api := client.NewHTTPClient(c.ServerEndpointAddr, nil)
	demo := client.NewDemoSource(c.DemoSourceURL, nil)

	app := &App{
		config:      c,
		directory:   view.NewDirectory(api, demo),
		pinger:      api,
		scanner:     bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
	}

	if c.HealthEndpointAddr != "" {
		hc, err := client.NewHealthClient(c.HealthEndpointAddr)
		if err != nil {
			return nil, err
		}
		app.pinger = hc
		app.closers = append(app.closers, hc)
	}

	return app, nil
}

func (app *App) setMode(mode Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (app *App) mode() Mode {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.Mode
}

// Run loads the directory, starts the online watcher and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close()

	a.Root(ctx)
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.pinger.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)

		case <-ctx.Done():
			return
		}
	}
}
