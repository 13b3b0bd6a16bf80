//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		restConfig, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", restConfig.Port)
		assert.Equal(t, LogTypeConsole, restConfig.Logger.LogType)
		assert.Equal(t, SqliteDbType, restConfig.Database.Type)
		assert.Equal(t, ":memory:", restConfig.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing port", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid logger settings", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: shouting
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid database settings", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: mysql
  dsn: "user:password@tcp(localhost:3306)/dbname"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
