package column

// Arena owns the node storage shared by a group of Columns.
// Released slots are recycled through a free list, so steady-state
// transfers and padding never grow the backing slice.
type Arena struct {
	nodes []node
	free  []NodeID
}

// NewArena returns an Arena with room for capacity nodes before growing.
// A negative capacity is treated as zero.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena{nodes: make([]node, 0, capacity)}
}

// New allocates a detached node holding v.
// Complexity: O(1) amortized.
func (a *Arena) New(v int) NodeID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = node{value: v, next: Nil, prev: Nil}

		return id
	}
	a.nodes = append(a.nodes, node{value: v, next: Nil, prev: Nil})

	return NodeID(len(a.nodes) - 1)
}

// Release returns a detached node to the free list.
// Releasing Nil is a no-op.
func (a *Arena) Release(id NodeID) {
	if id == Nil {
		return
	}
	a.nodes[id] = node{next: Nil, prev: Nil}
	a.free = append(a.free, id)
}

// Value returns the value stored in node id.
func (a *Arena) Value(id NodeID) int {
	return a.nodes[id].value
}

// Live reports the number of allocated, not yet released nodes.
func (a *Arena) Live() int {
	return len(a.nodes) - len(a.free)
}

// Cap reports the number of slots ever allocated (live + free).
func (a *Arena) Cap() int {
	return len(a.nodes)
}
