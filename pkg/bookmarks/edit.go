package bookmarks

import "strings"

// CreateItem inserts a new bookmark for path at pos.
func (t *Tree) CreateItem(pos Position, name, emojicon, path string) (*Leaf, error) {
	seq, err := t.resolveSlot("create item", pos)
	if err != nil {
		return nil, err
	}
	leaf := &Leaf{
		Meta: Meta{
			ID:       t.newID(),
			Name:     name,
			Emojicon: emojicon,
		},
		Path: path,
	}
	insertAt(seq, pos[0], leaf)
	return leaf, nil
}

// AppendItem adds a new bookmark at the end of the root sequence.
func (t *Tree) AppendItem(name, emojicon, path string) (*Leaf, error) {
	return t.CreateItem(Position{len(t.items)}, name, emojicon, path)
}

// Modify renames and re-icons the node at pos. A non-nil path replaces a
// bookmark's target; folders have no path.
func (t *Tree) Modify(pos Position, name, emojicon string, path *string) error {
	n, err := t.At(pos)
	if err != nil {
		return err
	}
	leaf, isLeaf := n.(*Leaf)
	if path != nil && !isLeaf {
		return invalidMove("modify", "folders have no path")
	}

	m := n.Base()
	m.Name = name
	m.Emojicon = emojicon
	if path != nil {
		leaf.Path = *path
	}
	return nil
}

// Remove deletes the node at pos together with its subtree.
func (t *Tree) Remove(pos Position) (Node, error) {
	return t.Delete(pos)
}

// RenamePath points every bookmark on oldPath, or on a file under the
// folder oldPath, at the corresponding newPath. It returns how many
// bookmarks changed.
func (t *Tree) RenamePath(oldPath, newPath string) int {
	changed := 0
	_ = t.Walk(func(_ Position, n Node) error {
		leaf, ok := n.(*Leaf)
		if !ok {
			return nil
		}
		if p, ok := RewritePath(leaf.Path, oldPath, newPath); ok {
			leaf.Path = p
			changed++
		}
		return nil
	})
	return changed
}

// RewritePath maps path across a rename of oldPath to newPath. Paths
// below a renamed folder keep their suffix. ok is false when path is not
// affected.
func RewritePath(path, oldPath, newPath string) (string, bool) {
	if oldPath == "" {
		return path, false
	}
	if path == oldPath {
		return newPath, true
	}
	if strings.HasPrefix(path, oldPath+"/") {
		return newPath + path[len(oldPath):], true
	}
	return path, false
}
