// internal/storage/storage.go
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is a key-value persistence façade: one JSON document per string key,
// written to a local data directory. It is the only durable state the engine
// has. Writes are last-writer-wins and there is no transaction spanning keys;
// a crash between two Set calls can leave related keys inconsistent.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get parses the JSON stored under key into a value of type T. A missing key
// or an unreadable/corrupt payload yields fallback: persisted state is not a
// trusted source of truth, so corruption is logged and swallowed rather than
// surfaced to callers.
func Get[T any](s *Store, key string, fallback T) T {
	s.mu.RLock()
	raw, err := os.ReadFile(s.path(key))
	s.mu.RUnlock()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).WithField("key", key).Warn("Failed to read stored value")
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Discarding corrupt stored value")
		return fallback
	}
	return value
}

// Set serializes value and stores it under key, replacing any previous value.
func (s *Store) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to serialize value")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to persist value")
	}
}

// Delete removes the value stored under key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).WithField("key", key).Error("Failed to delete value")
	}
}

// Well-known keys shared by the commerce services.
const (
	KeyUsers      = "users"
	KeyProducts   = "products"
	KeyCategories = "categories"
	KeyOrders     = "orders"
	KeySession    = "session"
	KeyCartItems  = "cart_items"
)
