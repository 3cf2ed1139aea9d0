package bookmarks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition indicates a position vector that does not address
	// a slot in the forest: an index is out of range or the vector descends
	// into a leaf.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidMove indicates a structural edit that would break the tree,
	// such as moving a folder into its own subtree.
	ErrInvalidMove = errors.New("invalid move")

	// ErrMalformedNode indicates a serialized node that is neither a leaf
	// nor a folder, or claims to be both.
	ErrMalformedNode = errors.New("malformed bookmark node")
)

// PositionError describes why a position could not be resolved.
type PositionError struct {
	Op     string
	Pos    Position
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Pos, e.Reason)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

func invalidMove(op, reason string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidMove, reason)
}
