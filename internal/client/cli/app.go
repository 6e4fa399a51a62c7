// Package cli implements the interactive command-line client. It wires the
// remote store, the local cache and the cached repository together and runs
// a small REPL on top of them.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/treiher/valens-client/internal/client/cache"
	"github.com/treiher/valens-client/internal/client/config"
	"github.com/treiher/valens-client/internal/client/remote"
	"github.com/treiher/valens-client/internal/client/repository"
	"github.com/treiher/valens-client/internal/client/session"
	"github.com/treiher/valens-client/internal/domain"
	"github.com/treiher/valens-client/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	repo     domain.Repository
	sessions *session.Manager
	cache    *cache.Cache
	log      logging.Logger

	// mode is shared between the REPL and the online-status watcher.
	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := cache.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	// The session cookie issued by the server lives in the jar for the
	// lifetime of the process.
	jar, err := cookiejar.New(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	httpClient := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	sessions := session.NewManager()
	repo := repository.New(remote.NewClient(c.ServerBaseURL, httpClient), db, sessions, log)

	return &App{
		config:   c,
		repo:     repo,
		sessions: sessions,
		cache:    db,
		log:      log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.cache.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, active := a.sessions.Current()
	return active
}

func (a *App) currentMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

// StartOnlineStatusWatcher probes server reachability on a fixed interval
// and flips the connectivity mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.repo.ReadVersion(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
