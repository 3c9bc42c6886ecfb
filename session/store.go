// Package session owns the authenticated credential: it logs in, persists
// the token and profile to the user config dir, restores them at startup,
// and clears them on logout.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pulse/core"
)

// Storage file names under the store directory. One entry per concern,
// mirroring the two browser storage keys the dashboard used.
const (
	tokenFile = "token.json"
	userFile  = "user.json"
)

// Store persists the credential across runs.
type Store struct {
	Dir string
}

// DefaultStoreDir returns the per-user state directory (~/.config/pulse on
// most systems).
func DefaultStoreDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pulse"), nil
}

// Load reads the persisted credential. A missing or corrupt entry yields an
// anonymous result and discards whatever was on disk; it never fails.
func (s *Store) Load() (string, *core.User) {
	var token string
	if !s.read(tokenFile, &token) || token == "" {
		s.discard()
		return "", nil
	}

	var user core.User
	if !s.read(userFile, &user) {
		s.discard()
		return "", nil
	}

	return token, &user
}

// Save writes both credential entries atomically.
func (s *Store) Save(token string, user core.User) error {
	if err := s.write(tokenFile, token); err != nil {
		return err
	}
	return s.write(userFile, user)
}

// Clear removes both credential entries. Missing files are not an error.
func (s *Store) Clear() {
	s.discard()
}

func (s *Store) read(name string, out any) bool {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// write serializes v and writes it via a temporary file and rename, so a
// crash mid-write never leaves a half-written entry behind.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, filepath.Join(s.Dir, name))
}

func (s *Store) discard() {
	os.Remove(filepath.Join(s.Dir, tokenFile))
	os.Remove(filepath.Join(s.Dir, userFile))
}
