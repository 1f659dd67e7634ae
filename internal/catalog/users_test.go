package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUsers(t *testing.T) *Users {
	t.Helper()
	u, err := OpenUsers(filepath.Join(t.TempDir(), "users.csv"))
	require.NoError(t, err)
	return u
}

func TestUserRegistrationAndLogin(t *testing.T) {
	u := openTestUsers(t)

	require.NoError(t, u.Create("alice", "a@x.com", "pw"))

	assert.ErrorIs(t, u.Create("alice", "other@x.com", "pw2"), ErrDuplicateUser)

	user, err := u.Authenticate("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = u.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = u.Authenticate("bob", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsernameUniquenessIsCaseSensitive(t *testing.T) {
	u := openTestUsers(t)

	require.NoError(t, u.Create("alice", "a@x.com", "pw"))
	assert.NoError(t, u.Create("Alice", "A@x.com", "pw"))

	ok, err := u.Exists("alice")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = u.Exists("ALICE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateRequiresAllFields(t *testing.T) {
	u := openTestUsers(t)

	assert.ErrorIs(t, u.Create("", "a@x.com", "pw"), ErrMissingFields)
	assert.ErrorIs(t, u.Create("alice", "", "pw"), ErrMissingFields)
	assert.ErrorIs(t, u.Create("alice", "a@x.com", ""), ErrMissingFields)
}
