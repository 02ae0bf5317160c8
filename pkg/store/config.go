package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
)

// Config tells Load where and how to persist.
type Config interface {
	BasePath() string
	Backend() Backend
}

// FileConfig is the viper-backed configuration shared by every command.
type FileConfig struct {
	Path       string  `json:"path"`
	Storage    Backend `json:"backend"`
	AIProvider string  `json:"aiProvider"`
	AIModel    string  `json:"aiModel"`
	ServeAddr  string  `json:"serveAddr"`
}

// LoadConfig reads .mindmate.yaml from $MINDMATE_CONFIG_PATH or the working
// directory, overlaid with MINDMATE_* environment variables.
func LoadConfig() (*FileConfig, error) {
	viper.SetDefault("path", "~/.mindmate")
	viper.SetDefault("backend", string(BackendDiskv))
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.model", "")
	viper.SetDefault("serve.addr", "127.0.0.1:9002")
	viper.SetConfigName(".mindmate") // .yaml is implicit
	viper.SetEnvPrefix("MINDMATE")
	viper.AutomaticEnv()

	if override := os.Getenv("MINDMATE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &FileConfig{
		Path:       path,
		Storage:    Backend(viper.GetString("backend")),
		AIProvider: viper.GetString("ai.provider"),
		AIModel:    viper.GetString("ai.model"),
		ServeAddr:  viper.GetString("serve.addr"),
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Backend() Backend {
	return f.Storage
}

// ConfigFile reports the config file viper used, if any.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}
