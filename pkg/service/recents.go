package service

import "github.com/mattsolo1/rover/pkg/bookmarks"

// Recents tracks the active file and the files opened before it, most
// recent first.
type Recents struct {
	active string
	list   []string
	limit  int
}

// NewRecents restores a saved list.
func NewRecents(list []string, limit int) *Recents {
	if limit <= 0 {
		limit = DefaultRecentsLimit
	}
	r := &Recents{limit: limit}
	for _, p := range list {
		if len(r.list) == limit {
			break
		}
		r.list = append(r.list, p)
	}
	return r
}

// Open makes path the active file. The previously active file moves to the
// front of the list, which is capped at the limit and never contains the
// active file.
func (r *Recents) Open(path string) {
	if r.active != "" {
		keep := min(len(r.list), r.limit-1)
		r.list = append([]string{r.active}, r.list[:keep]...)
	}
	r.active = path

	filtered := r.list[:0]
	for _, p := range r.list {
		if p != path {
			filtered = append(filtered, p)
		}
	}
	r.list = filtered
}

// Active is the file opened last.
func (r *Recents) Active() string { return r.active }

// List returns a copy of the history.
func (r *Recents) List() []string {
	return append([]string{}, r.list...)
}

// Rename rewrites paths after a file or folder moved in the vault.
func (r *Recents) Rename(oldPath, newPath string) {
	if p, ok := bookmarks.RewritePath(r.active, oldPath, newPath); ok {
		r.active = p
	}
	for i, p := range r.list {
		if np, ok := bookmarks.RewritePath(p, oldPath, newPath); ok {
			r.list[i] = np
		}
	}
}
