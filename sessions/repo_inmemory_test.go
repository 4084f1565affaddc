package sessions

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-todo-server/internal/errors"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *InMemoryRepo {
	r := NewInMemoryRepo()
	r.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return r
}

func TestCreateAndResolve(t *testing.T) {
	r := newTestRepo()

	token, err := r.Create("teja")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	s, err := r.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, "teja", s.UserID)
	require.Equal(t, token, s.ID)
	require.Equal(t, r.now(), s.CreatedAt)
}

func TestCreateRequiresUser(t *testing.T) {
	_, err := newTestRepo().Create("")
	require.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestResolveUnknown(t *testing.T) {
	r := newTestRepo()

	_, err := r.Resolve("")
	require.ErrorIs(t, err, errors.ErrSessionNotFound)
	_, err = r.Resolve("nope")
	require.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestLatestLoginWins(t *testing.T) {
	r := newTestRepo()

	first, err := r.Create("teja")
	require.NoError(t, err)
	second, err := r.Create("teja")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = r.Resolve(first)
	require.ErrorIs(t, err, errors.ErrSessionNotFound)

	s, err := r.Resolve(second)
	require.NoError(t, err)
	require.Equal(t, "teja", s.UserID)
}

func TestDestroyIsIdempotent(t *testing.T) {
	r := newTestRepo()
	token, err := r.Create("teja")
	require.NoError(t, err)

	require.NoError(t, r.Destroy(token))
	require.NoError(t, r.Destroy(token))
	require.NoError(t, r.Destroy(""))

	_, err = r.Resolve(token)
	require.ErrorIs(t, err, errors.ErrSessionNotFound)

	// The user can log in again after logout
	again, err := r.Create("teja")
	require.NoError(t, err)
	_, err = r.Resolve(again)
	require.NoError(t, err)
}

func TestBind(t *testing.T) {
	r := newTestRepo()

	require.NoError(t, r.Bind("12345", "nrjais"))
	s, err := r.Resolve("12345")
	require.NoError(t, err)
	require.Equal(t, "nrjais", s.UserID)

	// Rebinding the token to another user drops the first binding
	require.NoError(t, r.Bind("12345", "teja"))
	s, err = r.Resolve("12345")
	require.NoError(t, err)
	require.Equal(t, "teja", s.UserID)

	token, err := r.Create("nrjais")
	require.NoError(t, err)
	s, err = r.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, "nrjais", s.UserID)

	require.ErrorIs(t, r.Bind("", "teja"), errors.ErrInvalidRequest)
	require.ErrorIs(t, r.Bind("abc", ""), errors.ErrInvalidRequest)
}

func TestReset(t *testing.T) {
	r := newTestRepo()
	token, err := r.Create("teja")
	require.NoError(t, err)

	r.Reset()

	_, err = r.Resolve(token)
	require.ErrorIs(t, err, errors.ErrSessionNotFound)
}
