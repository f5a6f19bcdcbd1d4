// Package index implements the ordered index: an intrusive hash-map-plus-
// doubly-linked-list container shared by every node it stores. A node
// carries both the hash bucket membership (via the key) and the list
// links, so insert/lookup/remove-by-node/reorder are all O(1).
package index

// Node is the intrusive element owned by an Index. It is created on a
// successful Insert and dropped by RemoveNode or Clear; no other code
// constructs or frees one.
//
// The key is immutable once inserted. Value is opaque to the index — the
// cache layer is the only code that knows it is actually *envelope.
type Node struct {
	key   []byte
	value interface{}
	size  int64

	prev, next *Node
}

// Key returns the node's key bytes. Callers must not mutate the slice.
func (n *Node) Key() []byte { return n.key }

// Value returns the opaque value handle stored at insert time.
func (n *Node) Value() interface{} { return n.value }

// Size returns the node's size contribution to the index's running total.
func (n *Node) Size() int64 { return n.size }

// Next returns the node's successor in list order, or nil at the tail.
func (n *Node) Next() *Node { return n.next }

// Prev returns the node's predecessor in list order, or nil at the head.
func (n *Node) Prev() *Node { return n.prev }
