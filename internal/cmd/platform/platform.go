// Package platform parses platform service flags and launches the service.
package platform

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reelcrew/reelcrew/internal/api/rest"
	"github.com/reelcrew/reelcrew/internal/collab"
	"github.com/reelcrew/reelcrew/internal/identity"
	"github.com/reelcrew/reelcrew/internal/notification"
	entrypoint "github.com/reelcrew/reelcrew/internal/platform/cmd"
	"github.com/reelcrew/reelcrew/internal/project"
	"github.com/reelcrew/reelcrew/internal/storage/sqlite"
)

// Config holds platform command configuration.
type Config struct {
	Addr   string `env:"REELCREW_PLATFORM_ADDR" envDefault:":8080"`
	DBPath string `env:"REELCREW_PLATFORM_DB_PATH" envDefault:"data/platform.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the platform HTTP API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePlatform, func(ctx context.Context) error {
		store, err := openStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()

		server, err := rest.NewServer(rest.Config{
			Addr:          cfg.Addr,
			Users:         identity.NewService(store, time.Now, nil),
			Projects:      project.NewService(store, time.Now, nil),
			Collabs:       collab.NewService(store, store, store, nil),
			Notifications: notification.NewService(store, time.Now),
		})
		if err != nil {
			return err
		}
		return server.ListenAndServe(ctx)
	})
}

func openStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open platform sqlite store: %w", err)
	}
	return store, nil
}
