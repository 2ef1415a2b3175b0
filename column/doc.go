// Package column provides the storage unit of columnsort: a circular,
// doubly-linked sequence of integers whose nodes live in a shared Arena.
//
// 🚀 What is a Column?
//
//	A Column is identified by its head node; the tail is always prev(head).
//	Nodes are addressed by NodeID (an index into the Arena) instead of
//	pointers, so moving a node between two Columns is a pure relink:
//	  • PopLeft / PopRight detach a node without freeing it
//	  • Prepend / AppendNode splice a detached node into another Column
//	  • Append allocates a fresh node from the Arena (free list first)
//
// ✨ Key features:
//   - O(1) push/pop at both ends, O(1) node transfer between Columns
//   - in-place stable insertion sort over the ring (Sort)
//   - ring invariant checker (Validate) for tests and diagnostics
//
// ⚙️ Usage:
//
//	a := column.NewArena(8)
//	c := column.New(a)
//	c.Append(3)
//	c.Append(1)
//	c.Sort()
//	fmt.Println(c.Values()) // [1 3]
//
// Performance:
//
//   - Push/Pop/Prepend: O(1)
//   - Sort:             O(len²) comparisons, zero allocations
//
// An Arena is not safe for concurrent use; all Columns sharing one Arena
// must be driven by a single goroutine.
package column
