// Package dnd turns drag-and-drop gestures into bookmark tree edits.
//
// A gesture starts with Session.Start, which captures the dragged node's
// position, and ends with exactly one drop handler or Session.End. Nothing
// is mutated until a drop is confirmed.
package dnd

import (
	"errors"
	"strings"
)

// Kind names the data carried by a drag payload.
type Kind string

const (
	// KindBookmark carries a JSON-encoded bookmark node.
	KindBookmark Kind = "application/rover.bookmark"
	// KindFile carries a raw vault path.
	KindFile Kind = "application/rover.file"
)

// ErrMissingTransferData is returned when a drop carries no payload kind
// the target understands.
var ErrMissingTransferData = errors.New("missing transfer data")

// Payload is the data attached to a drag, keyed by kind.
type Payload map[Kind]string

// Has reports whether the payload carries kind.
func (p Payload) Has(kind Kind) bool {
	_, ok := p[kind]
	return ok
}

// Get returns the data for kind, or "" when absent.
func (p Payload) Get(kind Kind) string {
	return p[kind]
}

// Set attaches data for kind.
func (p Payload) Set(kind Kind, data string) {
	p[kind] = data
}

// Types lists the kinds present, for logging.
func (p Payload) Types() string {
	kinds := make([]string, 0, len(p))
	for k := range p {
		kinds = append(kinds, string(k))
	}
	return strings.Join(kinds, ",")
}

// FilePayload builds the payload for a file dragged in from the explorer.
func FilePayload(path string) Payload {
	return Payload{KindFile: path}
}
