package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

// ErrSignedOut is returned when an operation needs a signed-in user.
var ErrSignedOut = errors.New("not signed in; run `timetable login` first")

// Session holds the signed-in user and persists it to a file between runs.
type Session struct {
	path string
	user *models.UserInfo
}

// Open loads the session stored at path. A missing file yields a signed-out session.
func Open(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var user models.UserInfo
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	if user.Username != "" {
		s.user = &user
	}
	return s, nil
}

// User returns the signed-in user.
func (s *Session) User() (models.UserInfo, error) {
	if s.user == nil {
		return models.UserInfo{}, ErrSignedOut
	}
	return *s.user, nil
}

// SignIn stores user and writes the session file.
func (s *Session) SignIn(user models.UserInfo) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	s.user = &user
	return nil
}

// SignOut forgets the user and removes the session file.
func (s *Session) SignOut() error {
	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
