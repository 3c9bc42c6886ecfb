package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/api"
)

const userJSON = `{"id":1,"email":"a@example.com","username":"alice","full_name":null,"is_active":true,"created_at":"2026-08-01T10:00:00Z"}`

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(userJSON))
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}
		w.Write([]byte(userJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginPersistsCredential(t *testing.T) {
	srv := authServer(t)
	store := &Store{Dir: t.TempDir()}
	s := New(api.New(srv.URL), store)

	user, err := s.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-1", s.Token())

	// A fresh session restores the same credential from disk.
	restored := New(api.New(srv.URL), store)
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "tok-1", restored.Token())
	assert.Equal(t, "alice", restored.User().Username)
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	srv := authServer(t)
	s := New(api.New(srv.URL), &Store{Dir: t.TempDir()})

	_, err := s.Login(context.Background(), "alice", "wrong")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Error())
	assert.False(t, s.Authenticated())
}

func TestRegisterLogsIn(t *testing.T) {
	srv := authServer(t)
	s := New(api.New(srv.URL), &Store{Dir: t.TempDir()})

	user, err := s.Register(context.Background(), "a@example.com", "alice", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, s.Authenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := authServer(t)
	store := &Store{Dir: t.TempDir()}
	s := New(api.New(srv.URL), store)

	_, err := s.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	s.Logout()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())

	_, statErr := os.Stat(filepath.Join(store.Dir, "token.json"))
	assert.True(t, os.IsNotExist(statErr))

	restored := New(api.New(srv.URL), store)
	assert.False(t, restored.Authenticated())
}

func TestRestoreFromCorruptStorage(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name:  "empty dir",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "corrupt token",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte("{not json"), 0o600))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte(userJSON), 0o600))
			},
		},
		{
			name: "corrupt user",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte(`"tok-1"`), 0o600))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("%%%"), 0o600))
			},
		},
		{
			name: "token without user",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte(`"tok-1"`), 0o600))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			s := New(api.New("http://unused.invalid"), &Store{Dir: dir})
			assert.False(t, s.Authenticated())
			assert.Empty(t, s.Token())

			// Corrupt entries are discarded, not left behind.
			_, err := os.Stat(filepath.Join(dir, "token.json"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}
