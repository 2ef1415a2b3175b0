// Package column defines node identifiers and sentinel errors.
package column

import "errors"

// NodeID addresses one node inside an Arena.
// IDs stay stable for the lifetime of the node; a released ID may be reused.
type NodeID int

// Nil is the NodeID of "no node": an empty Column's head and the links of a
// detached node.
const Nil NodeID = -1

// Sentinel errors reported by Validate.
var (
	// ErrBrokenRing indicates next/prev links that do not form a closed ring
	// of the recorded length.
	ErrBrokenRing = errors.New("column: ring links are inconsistent")

	// ErrLengthMismatch indicates the ring length differs from the recorded size.
	ErrLengthMismatch = errors.New("column: ring length does not match size")
)

// node is one arena slot. Detached nodes have next == prev == Nil.
type node struct {
	value int
	next  NodeID
	prev  NodeID
}
