package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "taskdesk"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskdesk.db"
	DefaultLogName        = "debug.log"
	DefaultDateLayout     = "Jan 2, 2006"
)

type Config struct {
	DBPath     string `toml:"db_path"`
	SeedFile   string `toml:"seed_file"`
	DateLayout string `toml:"date_layout"`
	Debug      bool   `toml:"debug"`
	LogFile    string `toml:"log_file"`
	SkipLogin  bool   `toml:"skip_login"`
}

// ResolveConfigPath returns $XDG_CONFIG_HOME/taskdesk/config.toml, falling back to ~/.config
func ResolveConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), AppName, DefaultConfigFileName)
}

// DataDir returns $XDG_DATA_HOME/taskdesk, falling back to ~/.local/share
func DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), AppName)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, fallback)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Empty fields fall back to their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	def := Default()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = def.DateLayout
	}
	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	dir := DataDir()
	return Config{
		DBPath:     filepath.Join(dir, DefaultDBName),
		DateLayout: DefaultDateLayout,
		LogFile:    filepath.Join(dir, DefaultLogName),
	}
}
