package bookmarks

import (
	"fmt"
	"strconv"
	"strings"
)

// Position addresses a node by descending from the forest root. The last
// element indexes the root sequence and each preceding element indexes the
// children of the node selected so far, so Position{0, 2, 1} is
// root[1].Children[2].Children[0].
//
// Positions are transient: any mutation of the tree may invalidate them.
type Position []int

// Index is the index into the containing sibling sequence.
func (p Position) Index() int { return p[0] }

// Depth is the number of levels below the root sequence, starting at 1.
func (p Position) Depth() int { return len(p) }

// Parent addresses the folder that contains p. It is empty for root nodes.
func (p Position) Parent() Position { return p[1:] }

// Child addresses the i-th child of the folder at p.
func (p Position) Child(i int) Position {
	return append(Position{i}, p...)
}

// Clone returns an independent copy of p.
func (p Position) Clone() Position {
	return append(Position(nil), p...)
}

// Equal reports whether p and o address the same slot.
func (p Position) Equal(o Position) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether the node at p strictly contains the slot at o.
func (p Position) IsAncestorOf(o Position) bool {
	if len(p) >= len(o) {
		return false
	}
	return Position(o[len(o)-len(p):]).Equal(p)
}

// String renders p root-first with dots, e.g. Position{0, 2, 1} is "1.2.0".
func (p Position) String() string {
	parts := make([]string, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		parts = append(parts, strconv.Itoa(p[i]))
	}
	return strings.Join(parts, ".")
}

// ParsePosition parses the root-first dotted form produced by String.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty position", ErrInvalidPosition)
	}
	parts := strings.Split(s, ".")
	pos := make(Position, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPosition, part, s)
		}
		pos[len(parts)-1-i] = n
	}
	return pos, nil
}

// UpdatePositions corrects target in place after the node at source has
// been deleted. Only a target that shares source's ancestor chain down to
// source's parent is affected: the index at source's depth is decremented
// when it sits after source. A source deeper than target never affects it.
func UpdatePositions(source, target Position) {
	if len(source) > len(target) {
		return
	}

	i, j := len(source)-1, len(target)-1
	for i >= 0 {
		if i == 0 && source[i] < target[j] {
			target[j]--
		}
		if source[i] != target[j] {
			break
		}
		i--
		j--
	}
}
