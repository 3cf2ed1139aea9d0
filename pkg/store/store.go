// Package store persists the sidebar's settings: the bookmark forest, the
// recent-files list and plugin options. Every save writes a full snapshot.
package store

import (
	"context"
	"fmt"

	"github.com/mattsolo1/rover/pkg/bookmarks"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Settings mirrors the host plugin's data file.
type Settings struct {
	MySetting string           `json:"mySetting"`
	Bookmarks bookmarks.Forest `json:"bookmarks"`
	Recents   []string         `json:"recents"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() *Settings {
	return &Settings{
		MySetting: "default",
		Bookmarks: bookmarks.Forest{},
		Recents:   []string{},
	}
}

// Store loads and saves settings snapshots.
type Store interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	Close() error
}

// Open returns the store for backend at path.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
