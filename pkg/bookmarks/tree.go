package bookmarks

import (
	"slices"
	"time"
)

// Tree owns the bookmark forest. All edits happen in place on this single
// instance; callers hold a *Tree rather than copies of its nodes.
//
// A Tree is not safe for concurrent use. Edits are expected to come from a
// single event loop, one drag gesture at a time.
type Tree struct {
	items  []Node
	clock  func() time.Time
	lastID int64
}

// Option configures a Tree.
type Option func(*Tree)

// WithClock sets the time source used to stamp new node IDs.
func WithClock(clock func() time.Time) Option {
	return func(t *Tree) { t.clock = clock }
}

// NewTree wraps items as the forest. The tree takes ownership of items.
func NewTree(items []Node, opts ...Option) *Tree {
	t := &Tree{items: items, clock: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	_ = t.Walk(func(_ Position, n Node) error {
		if id := n.Base().ID; id > t.lastID {
			t.lastID = id
		}
		return nil
	})
	return t
}

// Items returns the root sequence. The returned slice is the live forest.
func (t *Tree) Items() Forest { return t.items }

// Len is the number of root nodes.
func (t *Tree) Len() int { return len(t.items) }

// newID returns a creation timestamp that is unique within the tree.
func (t *Tree) newID() int64 {
	id := t.clock().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// follow resolves the sibling sequence containing pos. The returned pointer
// refers to the tree's root slice or to a folder's Children field, so it
// stays valid across edits elsewhere in the tree.
func (t *Tree) follow(op string, pos Position) (*[]Node, error) {
	if len(pos) == 0 {
		return nil, &PositionError{Op: op, Pos: pos, Reason: "empty position"}
	}

	seq := &t.items
	for i := len(pos) - 1; i > 0; i-- {
		idx := pos[i]
		if idx < 0 || idx >= len(*seq) {
			return nil, &PositionError{Op: op, Pos: pos, Reason: "index out of range"}
		}
		f, ok := (*seq)[idx].(*Folder)
		if !ok {
			return nil, &PositionError{Op: op, Pos: pos, Reason: "descends into a leaf"}
		}
		seq = &f.Children
	}
	if pos[0] < 0 {
		return nil, &PositionError{Op: op, Pos: pos, Reason: "negative index"}
	}
	return seq, nil
}

// resolveNode is follow plus a check that pos addresses an existing node.
func (t *Tree) resolveNode(op string, pos Position) (*[]Node, error) {
	seq, err := t.follow(op, pos)
	if err != nil {
		return nil, err
	}
	if pos[0] >= len(*seq) {
		return nil, &PositionError{Op: op, Pos: pos, Reason: "index out of range"}
	}
	return seq, nil
}

// resolveSlot is follow plus a check that pos is a valid insertion point.
func (t *Tree) resolveSlot(op string, pos Position) (*[]Node, error) {
	seq, err := t.follow(op, pos)
	if err != nil {
		return nil, err
	}
	if pos[0] > len(*seq) {
		return nil, &PositionError{Op: op, Pos: pos, Reason: "index out of range"}
	}
	return seq, nil
}

// Follow returns the sibling sequence that directly contains the node at
// pos, i.e. the sequence pos.Index() applies to.
func (t *Tree) Follow(pos Position) ([]Node, error) {
	seq, err := t.follow("follow", pos)
	if err != nil {
		return nil, err
	}
	return *seq, nil
}

// At returns the node at pos.
func (t *Tree) At(pos Position) (Node, error) {
	seq, err := t.resolveNode("at", pos)
	if err != nil {
		return nil, err
	}
	return (*seq)[pos[0]], nil
}

// Delete removes the node at pos and returns it.
func (t *Tree) Delete(pos Position) (Node, error) {
	seq, err := t.resolveNode("delete", pos)
	if err != nil {
		return nil, err
	}
	return removeAt(seq, pos[0]), nil
}

// InsertAt inserts n before the node currently at pos, or appends it when
// pos.Index() equals the length of the sequence.
func (t *Tree) InsertAt(pos Position, n Node) error {
	seq, err := t.resolveSlot("insert", pos)
	if err != nil {
		return err
	}
	insertAt(seq, pos[0], n)
	return nil
}

// Find returns the first leaf bookmarking path, or nil.
func (t *Tree) Find(path string) *Leaf {
	return FindIn(t.items, path)
}

// FindIn searches nodes depth-first in sequence order. When a path is
// bookmarked more than once the first one encountered wins.
func FindIn(nodes []Node, path string) *Leaf {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Leaf:
			if v.Path == path {
				return v
			}
		case *Folder:
			if found := FindIn(v.Children, path); found != nil {
				return found
			}
		}
	}
	return nil
}

// Locate returns the current position of the node with the given id.
func (t *Tree) Locate(id int64) (Position, bool) {
	var found Position
	_ = t.Walk(func(pos Position, n Node) error {
		if n.Base().ID == id {
			found = pos
			return errStopWalk
		}
		return nil
	})
	return found, found != nil
}

// LeafCount counts the bookmarks in the forest.
func (t *Tree) LeafCount() int {
	count := 0
	_ = t.Walk(func(_ Position, n Node) error {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

// Walk visits every node depth-first in sequence order, parents before
// their children. Returning a non-nil error stops the walk; it is returned
// unless it is the internal stop sentinel.
func (t *Tree) Walk(fn func(pos Position, n Node) error) error {
	err := walk(t.items, nil, fn)
	if err == errStopWalk {
		return nil
	}
	return err
}

type stopWalk struct{}

func (stopWalk) Error() string { return "stop walk" }

var errStopWalk error = stopWalk{}

func walk(nodes []Node, parent Position, fn func(Position, Node) error) error {
	for i, n := range nodes {
		pos := parent.Child(i)
		if err := fn(pos, n); err != nil {
			return err
		}
		if f, ok := n.(*Folder); ok {
			if err := walk(f.Children, pos, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func removeAt(seq *[]Node, i int) Node {
	n := (*seq)[i]
	*seq = slices.Delete(*seq, i, i+1)
	return n
}

func insertAt(seq *[]Node, i int, n Node) {
	*seq = slices.Insert(*seq, i, n)
}
