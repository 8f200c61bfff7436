package config

import (
	"os"
	"testing"
	"time"

	"dragonante-server/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("DRAGONANTE_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("DRAGONANTE_GAME_STARTINGHOARD", "30")()

	a := assert.New(t)
	config.loaded = false
	cfg := Instance()
	a.Equal(":6000", cfg.Addr)
	a.Equal(3*time.Second, cfg.StartGameDelay)
	a.Equal(4, cfg.Game.MinPlayers)
	a.Equal(5, cfg.Game.MaxPlayers)
	a.Equal(30, cfg.Game.StartingHoard, "the environment wins over the file")
	a.Equal(time.Minute, cfg.Game.PromptTimeout)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("DRAGONANTE_GAME_STARTINGHOARD", "20")
	// ensure we aren't using a pointer
	cfg.Game.StartingHoard = 1
	cfg = Instance()
	a.Equal(30, cfg.Game.StartingHoard)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("DRAGONANTE_CONFIG_FILE", "testdata/missing.yaml")()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Game, cfg.Game)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.DisableAccessLogs)
}

func TestLoad_invalid(t *testing.T) {
	defer util.SetEnv("DRAGONANTE_CONFIG_FILE", "testdata/invalid.yaml")()
	assert.Error(t, Load())
}

func TestLoad_envFile(t *testing.T) {
	defer util.SetEnv("DRAGONANTE_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("DRAGONANTE_ENV_FILE", "testdata/test.env")()
	defer func() {
		_ = os.Unsetenv("DRAGONANTE_LOG_LEVEL")
	}()

	require.NoError(t, Load())
	assert.Equal(t, "warn", Instance().Log.Level)
}

func TestLoad_badEnv(t *testing.T) {
	defer util.SetEnv("DRAGONANTE_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("DRAGONANTE_GAME_MAXROUNDS", "three")()

	assert.Error(t, Load())
}
