package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/client/config"
	"github.com/dmitrijs2005/freshify/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	auth      services.AuthService
	inventory services.InventoryService
	reader    *bufio.Reader
	out       io.Writer

	mu             sync.Mutex
	userName       string
	mode           Mode
	sessionPending bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewFreshifyClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    c,
		db:        db,
		auth:      services.NewAuthService(apiClient, db),
		inventory: services.NewInventoryService(apiClient, db),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	defer a.auth.Close(ctx)
	a.Root(ctx)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) user() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

// setSession records the logged-in user. pending marks a session that still
// has to be resumed once the server is reachable again.
func (a *App) setSession(userName string, pending bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = userName
	a.sessionPending = pending
}

func (a *App) isLoggedIn() bool {
	return a.user() != ""
}

// requireOnline rejects server-side changes while offline.
func (a *App) requireOnline() error {
	if a.Mode() == ModeOffline {
		return client.ErrUnavailable
	}
	return nil
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
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

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.auth.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)

	a.mu.Lock()
	pending := a.sessionPending
	a.mu.Unlock()
	if pending {
		a.restoreSession(ctx)
	}
}

// restoreSession resumes the session remembered in the local cache.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.setSession(user, false)
		a.setMode(ModeOnline)
		log.Printf("Welcome back, %s", user)
	case errors.Is(err, client.ErrUnavailable):
		a.setSession(user, true)
		a.setMode(ModeOffline)
		log.Printf("Server unavailable, showing cached data for %s", user)
	case errors.Is(err, client.ErrLocalDataNotAvailable):
		log.Printf("Not logged in, type 'login' or 'register'")
	case errors.Is(err, client.ErrUnauthorized):
		a.setSession("", false)
		log.Printf("Session expired, please log in again")
	default:
		a.setSession("", false)
		log.Printf("Could not restore session: %s", err.Error())
	}
}
