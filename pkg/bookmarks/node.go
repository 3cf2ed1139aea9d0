package bookmarks

import (
	"encoding/json"
	"fmt"
)

// Meta holds the fields shared by every bookmark node.
type Meta struct {
	ID       int64  // creation timestamp in Unix milliseconds
	Name     string
	Emojicon string
}

// Base returns the shared fields. It is promoted to Leaf and Folder.
func (m *Meta) Base() *Meta { return m }

// Node is a bookmark tree node: either a *Leaf or a *Folder.
type Node interface {
	Base() *Meta
	node()
}

// Leaf is a file bookmark.
type Leaf struct {
	Meta
	Path string
}

// Folder groups other nodes. An empty Children slice is an empty folder.
type Folder struct {
	Meta
	Children []Node
}

func (*Leaf) node()   {}
func (*Folder) node() {}

// Clone returns a shallow copy of n. A cloned folder shares its children.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Leaf:
		c := *v
		return &c
	case *Folder:
		c := *v
		return &c
	}
	return nil
}

// IsFolder reports whether n is a folder.
func IsFolder(n Node) bool {
	_, ok := n.(*Folder)
	return ok
}

// Forest is the ordered sequence of root nodes. It encodes to the
// plugin's settings shape.
type Forest []Node

// record is the wire shape of a node. Path is set only on leaves and
// Children only on folders.
type record struct {
	ID       int64     `json:"crd"`
	Name     string    `json:"name"`
	Emojicon string    `json:"emojicon"`
	Path     *string   `json:"path,omitempty"`
	Children *[]record `json:"children,omitempty"`
}

func toRecord(n Node) record {
	m := n.Base()
	r := record{ID: m.ID, Name: m.Name, Emojicon: m.Emojicon}
	switch v := n.(type) {
	case *Leaf:
		p := v.Path
		r.Path = &p
	case *Folder:
		children := make([]record, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, toRecord(c))
		}
		r.Children = &children
	}
	return r
}

func fromRecord(r record) (Node, error) {
	meta := Meta{ID: r.ID, Name: r.Name, Emojicon: r.Emojicon}
	switch {
	case r.Path != nil && r.Children != nil:
		return nil, fmt.Errorf("%w: %q has both path and children", ErrMalformedNode, r.Name)
	case r.Path != nil:
		return &Leaf{Meta: meta, Path: *r.Path}, nil
	case r.Children != nil:
		f := &Folder{Meta: meta, Children: make([]Node, 0, len(*r.Children))}
		for _, cr := range *r.Children {
			c, err := fromRecord(cr)
			if err != nil {
				return nil, err
			}
			f.Children = append(f.Children, c)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q has neither path nor children", ErrMalformedNode, r.Name)
}

// MarshalJSON encodes the forest; a nil forest encodes as an empty array.
func (f Forest) MarshalJSON() ([]byte, error) {
	records := make([]record, 0, len(f))
	for _, n := range f {
		records = append(records, toRecord(n))
	}
	return json.Marshal(records)
}

// UnmarshalJSON decodes the forest, rejecting malformed nodes.
func (f *Forest) UnmarshalJSON(data []byte) error {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	out := make(Forest, 0, len(records))
	for _, r := range records {
		n, err := fromRecord(r)
		if err != nil {
			return err
		}
		out = append(out, n)
	}
	*f = out
	return nil
}

// MarshalNode encodes a single node, as carried by a drag payload.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(toRecord(n))
}

// UnmarshalNode decodes a single node.
func UnmarshalNode(data []byte) (Node, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return fromRecord(r)
}
