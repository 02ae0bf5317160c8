package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// Load opens the Persistence selected by cfg. A nil cfg reads the viper config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch b := cfg.Backend(); b {
	case "", BackendDiskv:
		return OpenDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.BasePath(), sqliteFileName))
	default:
		return nil, fmt.Errorf("store: unknown backend %q", b)
	}
}

// Diskv stores each key as a file under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDiskv prepares a diskv store rooted at basePath.
func OpenDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDirName),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

func (p *Diskv) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	if !p.d.Has(key) {
		return nil, false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (p *Diskv) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Watch reports keys rewritten by this or another process.
func (p *Diskv) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, p.basePath, p.keyForPath)
}

func (p *Diskv) keyForPath(path string) (string, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return "", false
	}
	if rel == tempDirName || filepath.Dir(rel) == tempDirName {
		return "", false
	}
	if filepath.Dir(rel) != "." {
		return "", false
	}
	return rel, true
}

// BasePath is the directory holding the key files.
func (p *Diskv) BasePath() string {
	return p.basePath
}

func (p *Diskv) Close() error { return nil }
