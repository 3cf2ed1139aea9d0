package bookmarks

// Move relocates the node at source so that it lands at the slot target
// addressed before the move. Both positions must be captured from the same
// tree state, e.g. at drag start and on drop.
//
// When source and target share a parent and source sits before target,
// removing source shifts the slot left by one and the insertion index is
// compensated. Dropping a node onto its own slot leaves the tree unchanged.
func (t *Tree) Move(target, source Position) error {
	dst, err := t.resolveSlot("move", target)
	if err != nil {
		return err
	}
	src, err := t.resolveNode("move", source)
	if err != nil {
		return err
	}
	if source.IsAncestorOf(target) {
		return invalidMove("move", "cannot move a folder into itself")
	}

	idx := target[0]
	before := len(*dst)
	n := removeAt(src, source[0])
	if len(*dst) < before && source[0] < idx {
		idx--
	}
	insertAt(dst, idx, n)
	return nil
}

// Nest moves the node at source to the front of the folder at folderPos.
func (t *Tree) Nest(folderPos, source Position) error {
	dst, err := t.resolveNode("nest", folderPos)
	if err != nil {
		return err
	}
	folder, ok := (*dst)[folderPos[0]].(*Folder)
	if !ok {
		return invalidMove("nest", "target is not a folder")
	}
	src, err := t.resolveNode("nest", source)
	if err != nil {
		return err
	}
	if source.Equal(folderPos) || source.IsAncestorOf(folderPos) {
		return invalidMove("nest", "cannot nest a folder into itself")
	}

	n := removeAt(src, source[0])
	folder.Children = append([]Node{n}, folder.Children...)
	return nil
}

// CreateFolder wraps the node at target and the node dragged from source
// into a new folder that takes target's place. The target becomes the
// first child and the dragged node the second, whichever way the drag went.
// The wrapped target keeps its ID; the folder gets a fresh one.
//
// It returns the new folder and its position.
func (t *Tree) CreateFolder(name, emojicon string, target, source Position) (*Folder, Position, error) {
	dst, err := t.resolveNode("create folder", target)
	if err != nil {
		return nil, nil, err
	}
	src, err := t.resolveNode("create folder", source)
	if err != nil {
		return nil, nil, err
	}
	if source.Equal(target) {
		return nil, nil, invalidMove("create folder", "cannot wrap a node with itself")
	}
	if source.IsAncestorOf(target) {
		return nil, nil, invalidMove("create folder", "cannot wrap a node with its own folder")
	}

	dragged := removeAt(src, source[0])
	corrected := target.Clone()
	UpdatePositions(source, corrected)

	// Cloned after the removal so a target folder that held the dragged
	// node does not keep a stale view of its children.
	original := Clone((*dst)[corrected[0]])

	folder := &Folder{
		Meta: Meta{
			ID:       t.newID(),
			Name:     name,
			Emojicon: emojicon,
		},
		Children: []Node{original, dragged},
	}
	(*dst)[corrected[0]] = folder
	return folder, corrected, nil
}
