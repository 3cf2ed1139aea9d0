package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/rover/pkg/bookmarks"
	"github.com/mattsolo1/rover/pkg/dnd"
	"github.com/mattsolo1/rover/pkg/explorer"
	"github.com/mattsolo1/rover/pkg/store"
)

// ErrUninitializedHost is reported when persistence is requested before a
// store is attached.
var ErrUninitializedHost = errors.New("host is not initialized")

// ErrIsFolder is returned when a folder is opened as a file.
var ErrIsFolder = errors.New("path is a folder")

// DefaultRecentsLimit is how many paths the recents list keeps.
const DefaultRecentsLimit = 6

// Service is the host context: it owns the bookmark tree and recents list
// and writes them back through the store.
type Service struct {
	Tree    *bookmarks.Tree
	Recents *Recents
	Store   store.Store
	Config  *Config
	Logger  *logrus.Logger

	// Files browses the vault; nil when no vault directory is configured.
	Files *explorer.Explorer

	mySetting string
}

// Config holds service configuration
type Config struct {
	DataFile        string
	Backend         store.Backend
	VaultDir        string
	RecentsLimit    int
	DefaultEmojicon string
}

// New loads settings from st and builds the service around them. A nil
// store gives an in-memory service whose saves are no-ops.
func New(ctx context.Context, config *Config, st store.Store, logger *logrus.Logger, opts ...bookmarks.Option) (*Service, error) {
	if config == nil {
		config = &Config{}
	}
	if config.RecentsLimit <= 0 {
		config.RecentsLimit = DefaultRecentsLimit
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	settings := store.DefaultSettings()
	if st != nil {
		loaded, err := st.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		settings = loaded
	}

	var files *explorer.Explorer
	if config.VaultDir != "" {
		files = explorer.New(config.VaultDir, logger)
	}

	return &Service{
		Tree:      bookmarks.NewTree(settings.Bookmarks, opts...),
		Files:     files,
		Recents:   NewRecents(settings.Recents, config.RecentsLimit),
		Store:     st,
		Config:    config,
		Logger:    logger,
		mySetting: settings.MySetting,
	}, nil
}

// Settings snapshots the current state in the store's shape.
func (s *Service) Settings() *store.Settings {
	return &store.Settings{
		MySetting: s.mySetting,
		Bookmarks: s.Tree.Items(),
		Recents:   s.Recents.List(),
	}
}

// Save writes a full snapshot. Without a store it logs and does nothing.
func (s *Service) Save(ctx context.Context) error {
	if s.Store == nil {
		s.Logger.WithError(ErrUninitializedHost).Error("Save skipped")
		return nil
	}
	if err := s.Store.Save(ctx, s.Settings()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{
		"bookmarks": s.Tree.LeafCount(),
		"recents":   len(s.Recents.List()),
	}).Debug("Settings saved")
	return nil
}

// Session starts drag-and-drop handling over the tree; successful drops
// are saved through the service.
func (s *Service) Session(dialogs dnd.Dialogs) *dnd.Session {
	return dnd.NewSession(s.Tree, dialogs, s, s.Logger)
}

// OpenFile records path as the active file and saves the recents list.
func (s *Service) OpenFile(ctx context.Context, path string) error {
	s.Recents.Open(path)
	s.Logger.WithField("path", path).Debug("File opened")
	return s.Save(ctx)
}

// OpenVaultFile opens a file from the vault. Without a vault it logs and does
// nothing; a path that is not a file in the vault is an error.
func (s *Service) OpenVaultFile(ctx context.Context, path string) error {
	if s.Files == nil {
		s.Logger.WithError(ErrUninitializedHost).WithField("path", path).Error("Open skipped")
		return nil
	}
	f, err := s.Files.Stat(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if f.IsFolder {
		return fmt.Errorf("open %s: %w", path, ErrIsFolder)
	}
	return s.OpenFile(ctx, f.Path)
}

// RenameFile follows a file or folder rename in the vault: bookmarks and
// recents that point at oldPath, or below it, are rewritten and saved.
func (s *Service) RenameFile(ctx context.Context, oldPath, newPath string) (int, error) {
	changed := s.Tree.RenamePath(oldPath, newPath)
	s.Recents.Rename(oldPath, newPath)
	s.Logger.WithFields(logrus.Fields{
		"from":      oldPath,
		"to":        newPath,
		"bookmarks": changed,
	}).Info("Paths renamed")
	return changed, s.Save(ctx)
}

// Close releases the store.
func (s *Service) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
