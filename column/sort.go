package column

// Sort orders c ascending in place with an insertion sort over the ring.
//
// Algorithm Outline:
//  1. sortedTail := head; the nodes head..sortedTail are sorted.
//  2. Repeat len-1 times with cur := next(sortedTail):
//     - cur ≥ sortedTail: extend the sorted run (sortedTail = cur).
//     - otherwise unlink cur and walk backward from sortedTail while the
//     predecessor is still greater than cur; splice cur in before the
//     stopping node. Stopping at head makes cur the new head.
//
// Equal values keep their relative order: a node is always placed after
// the values equal to it.
//
// Complexity: O(len²) comparisons, O(1) extra memory, no allocations.
func (c *Column) Sort() {
	if c.size < 2 {
		return
	}
	nodes := c.arena.nodes
	sortedTail := c.head
	for k := 1; k < c.size; k++ {
		cur := nodes[sortedTail].next
		v := nodes[cur].value
		if v >= nodes[sortedTail].value {
			sortedTail = cur
			continue
		}

		// detach cur; sortedTail now points past it
		next := nodes[cur].next
		nodes[sortedTail].next = next
		nodes[next].prev = sortedTail

		at := sortedTail
		for at != c.head && v < nodes[nodes[at].prev].value {
			at = nodes[at].prev
		}

		// splice cur in front of at
		before := nodes[at].prev
		nodes[cur].prev = before
		nodes[cur].next = at
		nodes[before].next = cur
		nodes[at].prev = cur
		if at == c.head {
			c.head = cur
		}
	}
}

// IsSorted reports whether c is non-decreasing from head to tail.
func (c *Column) IsSorted() bool {
	if c.size < 2 {
		return true
	}
	nodes := c.arena.nodes
	id := c.head
	for k := 1; k < c.size; k++ {
		next := nodes[id].next
		if nodes[next].value < nodes[id].value {
			return false
		}
		id = next
	}

	return true
}
