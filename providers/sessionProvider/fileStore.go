package sessionprovider

import (
	"assetconsole/models"
	"assetconsole/providers"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore keeps the session in a JSON file, the terminal counterpart of the
// browser's local storage. Every read goes back to disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) providers.CredentialStore {
	return &FileStore{path: path}
}

func (f *FileStore) CurrentToken(ctx context.Context) (string, bool, error) {
	session, err := f.load()
	if err != nil {
		return "", false, err
	}
	if session.Token == "" {
		return "", false, nil
	}
	return session.Token, true, nil
}

func (f *FileStore) CurrentUser(ctx context.Context) (*models.User, error) {
	session, err := f.load()
	if err != nil {
		return nil, err
	}
	return session.User, nil
}

func (f *FileStore) Save(ctx context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (f *FileStore) load() (models.Session, error) {
	var session models.Session
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return session, nil
	}
	if err != nil {
		return session, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return session, nil
	}
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	return session, nil
}
