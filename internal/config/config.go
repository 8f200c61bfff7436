package config

import (
	"errors"
	"os"
	"time"

	"dragonante-server/internal/util"
	"dragonante-server/pkg/playable/dragonante"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Dragon Ante server
type Config struct {
	loaded bool

	// Addr is the listen address
	Addr string `yaml:"addr" envconfig:"addr"`

	// StartGameDelay is how long a table waits for more players once the minimum is seated
	StartGameDelay time.Duration `yaml:"startGameDelay" envconfig:"start_game_delay"`

	Game dragonante.Options `yaml:"game"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		Addr:           ":5000",
		StartGameDelay: time.Second * 10,
		Game:           dragonante.DefaultOptions(),
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML file, then DRAGONANTE_* environment variables.
// A .env file is read into the environment first and a missing config file is not an error
func Load() error {
	envFile := util.Getenv("DRAGONANTE_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("DRAGONANTE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("dragonante", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
