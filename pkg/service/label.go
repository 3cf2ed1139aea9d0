package service

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/rover/pkg/frontmatter"
)

// DefaultLabel proposes a name and icon for a new bookmark on path. The
// note's frontmatter wins when the vault is known and the note has one;
// otherwise the name comes from the file name.
func (s *Service) DefaultLabel(path string) (name, emojicon string) {
	if s.Config.VaultDir != "" {
		fm, err := frontmatter.ParseFile(filepath.Join(s.Config.VaultDir, filepath.FromSlash(path)))
		if err != nil {
			s.Logger.WithError(err).WithField("path", path).Debug("No frontmatter label")
		}
		name, emojicon = fm.Label()
	}
	if name == "" {
		name = NameFromPath(path)
	}
	if emojicon == "" {
		emojicon = s.Config.DefaultEmojicon
	}
	return name, emojicon
}

// NameFromPath turns a vault path into a display name: the file stem with
// dashes and underscores as spaces, title-cased when it is all lower case.
func NameFromPath(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(stem))
	if stem == "" {
		return base
	}
	if stem == strings.ToLower(stem) {
		return cases.Title(language.English).String(stem)
	}
	return stem
}
