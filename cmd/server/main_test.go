package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-todo-server/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	v := config.NewViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "", "")
	flags.String("users-file", "", "")

	require.NoError(t, bindFlags(v, flags, map[string]string{
		"port":       config.KeyPort,
		"users-file": config.KeyUsersFile,
	}))
	require.NoError(t, flags.Parse([]string{"--port", "9999"}))

	c := config.New(v)
	require.Equal(t, ":9999", c.GetPort())
	require.Equal(t, "./data/users.toml", c.GetUsersFile())
}

func TestBindFlagsUnknownFlag(t *testing.T) {
	v := config.NewViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	require.Error(t, bindFlags(v, flags, map[string]string{"missing": config.KeyPort}))
}

func TestLoadUsers(t *testing.T) {
	require.Empty(t, loadUsers(""))
	require.Empty(t, loadUsers(filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "users.toml")
	require.NoError(t, os.WriteFile(path, []byte("[users.teja]\nname = \"Teja\"\n"), 0o600))

	profiles := loadUsers(path)
	require.Len(t, profiles, 1)
	require.Equal(t, "Teja", profiles["teja"].Name)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "port", "env", "static-root", "users-file"} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
