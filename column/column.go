package column

import "fmt"

// Column is a circular doubly-linked list of ints stored in an Arena.
// The zero value is not usable; create Columns with New.
type Column struct {
	arena *Arena
	head  NodeID
	size  int
}

// New returns an empty Column backed by a.
func New(a *Arena) *Column {
	return &Column{arena: a, head: Nil}
}

// Len returns the number of nodes in c.
func (c *Column) Len() int { return c.size }

// Empty reports whether c has no nodes.
func (c *Column) Empty() bool { return c.head == Nil }

// Head returns the first node, or Nil if c is empty.
func (c *Column) Head() NodeID { return c.head }

// Tail returns the last node, or Nil if c is empty.
func (c *Column) Tail() NodeID {
	if c.head == Nil {
		return Nil
	}

	return c.arena.nodes[c.head].prev
}

// Next returns the successor of id in the ring.
func (c *Column) Next(id NodeID) NodeID { return c.arena.nodes[id].next }

// Prev returns the predecessor of id in the ring.
func (c *Column) Prev(id NodeID) NodeID { return c.arena.nodes[id].prev }

// Append allocates a node holding v and inserts it as the new tail.
// Complexity: O(1).
func (c *Column) Append(v int) {
	c.AppendNode(c.arena.New(v))
}

// AppendNode inserts the detached node id as the new tail.
// Passing Nil is a no-op.
// Complexity: O(1).
func (c *Column) AppendNode(id NodeID) {
	if id == Nil {
		return
	}
	c.link(id)
}

// Prepend inserts the detached node id as the new head.
// Passing Nil is a no-op.
// Complexity: O(1).
func (c *Column) Prepend(id NodeID) {
	if id == Nil {
		return
	}
	c.link(id)
	c.head = id
}

// link splices id between the current tail and head. On an empty Column the
// node becomes a one-element ring.
func (c *Column) link(id NodeID) {
	nodes := c.arena.nodes
	if c.head == Nil {
		nodes[id].next = id
		nodes[id].prev = id
		c.head = id
		c.size = 1

		return
	}
	tail := nodes[c.head].prev
	nodes[id].next = c.head
	nodes[id].prev = tail
	nodes[tail].next = id
	nodes[c.head].prev = id
	c.size++
}

// PopLeft detaches and returns the head node.
// The second result is false when c is empty.
// Complexity: O(1).
func (c *Column) PopLeft() (NodeID, bool) {
	if c.head == Nil {
		return Nil, false
	}
	id := c.head
	c.unlink(id)

	return id, true
}

// PopRight detaches and returns the tail node.
// The second result is false when c is empty.
// Complexity: O(1).
func (c *Column) PopRight() (NodeID, bool) {
	if c.head == Nil {
		return Nil, false
	}
	id := c.arena.nodes[c.head].prev
	c.unlink(id)

	return id, true
}

// unlink removes id from the ring, moving head forward if id was the head.
func (c *Column) unlink(id NodeID) {
	nodes := c.arena.nodes
	if c.size == 1 {
		c.head = Nil
	} else {
		next, prev := nodes[id].next, nodes[id].prev
		nodes[prev].next = next
		nodes[next].prev = prev
		if c.head == id {
			c.head = next
		}
	}
	nodes[id].next = Nil
	nodes[id].prev = Nil
	c.size--
}

// Clear releases every node of c back to the Arena.
func (c *Column) Clear() {
	for {
		id, ok := c.PopLeft()
		if !ok {
			return
		}
		c.arena.Release(id)
	}
}

// Values returns the column contents from head to tail.
// Complexity: O(len).
func (c *Column) Values() []int {
	out := make([]int, 0, c.size)
	c.Each(func(v int) { out = append(out, v) })

	return out
}

// Each calls fn for every value from head to tail.
func (c *Column) Each(fn func(v int)) {
	if c.head == Nil {
		return
	}
	id := c.head
	for {
		fn(c.arena.nodes[id].value)
		id = c.arena.nodes[id].next
		if id == c.head {
			return
		}
	}
}

// Validate walks the ring in both directions and checks it closes after
// exactly Len nodes with matching next/prev links.
// Complexity: O(len).
func (c *Column) Validate() error {
	if c.head == Nil {
		if c.size != 0 {
			return fmt.Errorf("empty head with size %d: %w", c.size, ErrLengthMismatch)
		}

		return nil
	}
	nodes := c.arena.nodes
	count := 0
	id := c.head
	for {
		next := nodes[id].next
		if next == Nil || nodes[next].prev != id {
			return fmt.Errorf("node %d: %w", id, ErrBrokenRing)
		}
		count++
		id = next
		if id == c.head {
			break
		}
		if count > c.size {
			return fmt.Errorf("ring longer than size %d: %w", c.size, ErrLengthMismatch)
		}
	}
	if count != c.size {
		return fmt.Errorf("ring has %d nodes, size %d: %w", count, c.size, ErrLengthMismatch)
	}

	return nil
}
