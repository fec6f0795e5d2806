package token

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Kind classifies how a stored access token was obtained.
type Kind string

const (
	// KindLongLife marks a token with no expiry that never needs refreshing.
	KindLongLife Kind = "long_life"
	// KindRefresh marks a short-lived token paired with a refresh token.
	KindRefresh Kind = "refresh"
)

// Bundle is the persisted credential state.
// Invariant: long_life bundles carry no expiry; refresh bundles always do.
type Bundle struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	TokenType    Kind       `json:"token_type"`
	ExpiresAt    *time.Time `json:"expires_at"`
	LastUpdated  time.Time  `json:"last_updated"`
}

// Expired reports whether the bundle's expiry has passed at the given time.
// Bundles without an expiry never expire.
func (b *Bundle) Expired(now time.Time) bool {
	return b.ExpiresAt != nil && !now.Before(*b.ExpiresAt)
}

// Store persists one credential bundle as a JSON file on disk.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a token store backed by the given file path, creating the
// parent directory if needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create token directory %q: %w", dir, err)
		}
	}
	return &Store{path: path, now: time.Now}, nil
}

// Load reads the persisted bundle. A missing, unreadable or corrupt file
// degrades to "no stored credentials" with a warning, never an error.
func (s *Store) Load() *Bundle {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read token file %s: %v", s.path, err)
		}
		return nil
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		log.Printf("Warning: could not parse token file %s: %v", s.path, err)
		return nil
	}
	if b.AccessToken == "" {
		return nil
	}
	return &b
}

// Save overwrites the persisted bundle, stamping LastUpdated. The write goes
// through a temp file and rename so readers never observe a partial file.
func (s *Store) Save(b *Bundle) error {
	b.LastUpdated = s.now()

	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}

// Clear deletes the persisted bundle. A missing file is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// GetValid returns the stored bundle when it is still usable: either it has
// no expiry, the expiry is in the future, or it is expired but carries a
// refresh token (the caller is expected to refresh). An expired bundle
// without a refresh token returns nil.
func (s *Store) GetValid() *Bundle {
	b := s.Load()
	if b == nil {
		return nil
	}
	if b.Expired(s.now()) && b.RefreshToken == "" {
		return nil
	}
	return b
}
