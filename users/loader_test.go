package users_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrsteele09/go-todo-server/users"
	"github.com/stretchr/testify/require"
)

const usersTOML = `
[users.teja]
username = "tejam"
name = "Teja"

[users.nrjais]
username = "nrjais"
name = "Neeraj"
session_id = "12345"
`

func TestDecode(t *testing.T) {
	got, err := users.Decode(strings.NewReader(usersTOML))
	require.NoError(t, err)

	require.Equal(t, map[string]users.User{
		"teja":   {Key: "teja", Username: "tejam", Name: "Teja"},
		"nrjais": {Key: "nrjais", Username: "nrjais", Name: "Neeraj", SessionID: "12345"},
	}, got)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := users.Decode(strings.NewReader("[users.teja]\npassword = \"x\"\n"))
	require.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	got, err := users.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.toml")
	require.NoError(t, os.WriteFile(path, []byte(usersTOML), 0o600))

	got, err := users.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Teja", got["teja"].Name)

	_, err = users.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
