package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"adpanel/internal/core/domain"
)

// ClientState is what a command-line client keeps between runs: the
// session profile and the cookie that authenticates it with the server.
type ClientState struct {
	Server  string         `json:"server"`
	Cookie  string         `json:"cookie"`
	Session domain.Session `json:"session"`
}

// FileStore keeps one sealed ClientState in a file.
type FileStore struct {
	Path   string
	Sealer *Sealer
}

// Save seals state and writes it with owner-only permissions.
func (f *FileStore) Save(state ClientState) error {
	blob, err := f.Sealer.SealValue(state)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(blob), 0o600)
}

// Load rehydrates the stored state. A missing, corrupt or foreign file
// means "no session": ok is false and no error is reported.
func (f *FileStore) Load() (ClientState, bool) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return ClientState{}, false
	}
	var state ClientState
	if err = f.Sealer.OpenValue(strings.TrimSpace(string(data)), &state); err != nil {
		return ClientState{}, false
	}
	if state.Session.Empty() {
		return ClientState{}, false
	}
	return state, true
}

// Clear removes the stored state.
func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
