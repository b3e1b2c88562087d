package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

func TestMissingFileIsSignedOut(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	_, err = s.User()
	assert.ErrorIs(t, err, ErrSignedOut)
	assert.NoError(t, s.SignOut())
}

func TestSignInPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := Open(path)
	require.NoError(t, err)

	teacher := models.UserInfo{ID: 1, Username: "teacher", Role: models.RoleTeacher, FullName: "Иванов Иван Иванович"}
	require.NoError(t, s.SignIn(teacher))

	reopened, err := Open(path)
	require.NoError(t, err)
	user, err := reopened.User()
	require.NoError(t, err)
	assert.Equal(t, teacher, user)

	require.NoError(t, reopened.SignOut())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	again, err := Open(path)
	require.NoError(t, err)
	_, err = again.User()
	assert.ErrorIs(t, err, ErrSignedOut)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}
