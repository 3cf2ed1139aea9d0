// Package explorer lists the files and folders of a note vault the way the
// sidebar shows them.
package explorer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/djherbis/times"
	"github.com/sirupsen/logrus"
)

const noteExt = ".md"

// File is one entry of a vault folder. Path is vault-relative and slash
// separated. Time is the modification time of a file and the creation time
// of a folder.
type File struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	IsFolder bool      `json:"is_folder"`
	Time     time.Time `json:"time"`
}

// Explorer reads a vault rooted at a directory.
type Explorer struct {
	root   string
	logger *logrus.Logger
}

// New creates an explorer over root.
func New(root string, logger *logrus.Logger) *Explorer {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Explorer{root: root, logger: logger}
}

// Root is the vault directory on disk.
func (e *Explorer) Root() string { return e.root }

// List returns the entries of the vault folder dir, folders first and then
// by case-insensitive name. An empty dir lists the vault root. Hidden
// entries are skipped.
func (e *Explorer) List(dir string) ([]File, error) {
	rel, err := clean(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(e.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			e.logger.WithError(err).WithField("name", entry.Name()).Warn("Skipping unreadable entry")
			continue
		}
		files = append(files, newFile(rel, info))
	}
	slices.SortFunc(files, Compare)

	e.logger.WithFields(logrus.Fields{
		"dir":     rel,
		"entries": len(files),
	}).Debug("Listed vault folder")
	return files, nil
}

// Stat describes the vault entry at p.
func (e *Explorer) Stat(p string) (File, error) {
	rel, err := clean(p)
	if err != nil {
		return File{}, err
	}
	info, err := os.Stat(filepath.Join(e.root, filepath.FromSlash(rel)))
	if err != nil {
		return File{}, err
	}
	return newFile(path.Dir(rel), info), nil
}

// Compare orders folders before files, then names case-insensitively.
func Compare(a, b File) int {
	if a.IsFolder != b.IsFolder {
		if a.IsFolder {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

func newFile(dir string, info os.FileInfo) File {
	f := File{
		Name:     info.Name(),
		Path:     path.Join(dir, info.Name()),
		IsFolder: info.IsDir(),
		Time:     info.ModTime(),
	}
	if f.IsFolder {
		f.Time = created(info)
	} else {
		f.Name = strings.TrimSuffix(f.Name, noteExt)
	}
	return f
}

// created falls back from birth time to change time to modification time,
// depending on what the platform records.
func created(info os.FileInfo) time.Time {
	ts := times.Get(info)
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime()
	case ts.HasChangeTime():
		return ts.ChangeTime()
	default:
		return ts.ModTime()
	}
}

// clean turns a vault path into a slash-separated relative path, refusing
// anything that escapes the vault.
func clean(p string) (string, error) {
	rel := path.Clean(filepath.ToSlash(p))
	if path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %q", ErrOutsideVault, p)
	}
	return rel, nil
}
