package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
)

// Session is the locally persisted state: the issued token, the public
// user view, and a mirror of the last profile seen from the server.
// The mirror is a read optimization only; the server copy is
// authoritative, and the whole session is wiped on logout.
type Session struct {
	Token   string                   `json:"token"`
	User    dto.UserView             `json:"user"`
	Profile *models.PregnancyProfile `json:"profile,omitempty"`
	SavedAt time.Time                `json:"savedAt"`
}

// Cache persists a Session as a JSON file on disk.
type Cache struct {
	path string
}

// NewCache stores the session under the given directory.
func NewCache(dir string) *Cache {
	return &Cache{path: filepath.Join(dir, "session.json")}
}

// DefaultCache stores the session under the user config directory.
func DefaultCache() (*Cache, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewCache(filepath.Join(dir, "mamacare")), nil
}

// Load returns the stored session, or nil when none exists.
func (c *Cache) Load() (*Session, error) {
	b, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) Save(s *Session) error {
	s.SavedAt = time.Now().UTC()
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.path, b, 0o600)
}

// Clear removes the stored session. Missing files are not an error.
func (c *Cache) Clear() error {
	err := os.Remove(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
