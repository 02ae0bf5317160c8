package commands

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/store"
)

// aiRequirement says how a command treats a missing AI provider.
type aiRequirement int

const (
	// aiNone never builds a collaborator.
	aiNone aiRequirement = iota
	// aiOptional logs the problem and continues; the flows answer with their
	// fixed apology instead.
	aiOptional
	// aiRequired fails the command.
	aiRequired
)

var logger = log.New(os.Stderr, "", 0)

// loadService reads .env and the config file, opens persistence and builds
// the companion backend.
func loadService(ctx context.Context, ai aiRequirement) (*app.Service, *store.FileConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := app.Options{Persistence: p, Logger: logger}
	if ai != aiNone {
		c, err := app.NewCollaborator(ctx, app.Provider(cfg.AIProvider), cfg.AIModel)
		switch {
		case err == nil:
			opts.Collaborator = c
		case ai == aiRequired:
			_ = p.Close()
			return nil, nil, err
		default:
			logger.Printf("mindmate: AI features unavailable: %v", err)
		}
	}
	return app.New(opts), cfg, nil
}
