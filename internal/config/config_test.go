package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-todo-server/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := config.New(nil)

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "Go Todo Server", c.GetAppName())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "", c.GetStaticRoot())
	require.Equal(t, "./data/users.toml", c.GetUsersFile())
	require.Equal(t, int64(1<<20), c.GetMaxBodyBytes())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TODO_PORT", "9090")
	t.Setenv("TODO_ENV", "prod")
	t.Setenv("TODO_STATIC_ROOT", "/srv/public")

	c := config.New(nil)

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "PROD", c.GetEnv())
	require.Equal(t, "/srv/public", c.GetStaticRoot())
}

func TestPortWithHost(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeyPort, "127.0.0.1:8081")

	require.Equal(t, "127.0.0.1:8081", config.New(v).GetPort())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte("app_name = \"Todos\"\nmax_body_bytes = 2048\n"), 0o600))

	v := config.NewViper()
	require.NoError(t, config.ReadFile(v, path))

	c := config.New(v)
	require.Equal(t, "Todos", c.GetAppName())
	require.Equal(t, int64(2048), c.GetMaxBodyBytes())
}

func TestReadFileMissing(t *testing.T) {
	v := config.NewViper()
	require.Error(t, config.ReadFile(v, filepath.Join(t.TempDir(), "nope.toml")))
	require.NoError(t, config.ReadFile(v, ""))
}
