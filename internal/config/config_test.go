package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing values", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: everything else has its default
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "ticTacToeScores", conf.Storage.ScoresKey)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, entity.DefaultGameConfig(), conf.Game.ToGameConfig())
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "8081"
storage:
  driver: sqlite
sqlite-storage-path: /tmp/scores.db
game:
  grid-size: 6
  win-length: 4
  symbol-a: "A"
  symbol-b: "B"
`)

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "/tmp/scores.db", conf.SQLiteStoragePath)
		assert.Equal(t, entity.GameConfig{GridSize: 6, WinLength: 4, SymbolA: "A", SymbolB: "B"}, conf.Game.ToGameConfig())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: redis\n")
		t.Setenv("STORAGE_DRIVER", "memory")

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, DriverMemory, conf.Storage.Driver)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})
}
