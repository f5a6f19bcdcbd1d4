package index

import "errors"

// ErrEmptyKey is returned by Insert when the key has zero length.
var ErrEmptyKey = errors.New("index: key must not be empty")

// ErrDuplicateKey is returned by Insert when the key is already present.
var ErrDuplicateKey = errors.New("index: duplicate key")

// Index is a mapping from opaque keys to nodes, coupled with a doubly
// linked list that orders those same nodes. The list and the map always
// hold the same multiset of nodes; every operation below keeps that true
// and keeps the two running counters (item count, total size) eagerly
// consistent — never reflecting a half-linked state.
//
// Ordering contract: Insert always appends at the tail. Head is the
// oldest surviving node by insertion time (before any reordering);
// tail is the newest, or the most recently touched.
//
// Index is not safe for concurrent use; callers serialize externally.
type Index struct {
	nodes map[string]*Node
	head  *Node
	tail  *Node

	itemCount  int
	totalBytes int64
}

// New returns an empty Index.
func New() *Index {
	return &Index{nodes: make(map[string]*Node)}
}

// Insert creates a node for key/value/size and appends it at the tail.
// It rejects an empty key and a key already present.
func (idx *Index) Insert(key []byte, value interface{}, size int64) (*Node, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k := string(key)
	if _, exists := idx.nodes[k]; exists {
		return nil, ErrDuplicateKey
	}

	n := &Node{key: key, value: value, size: size}
	idx.nodes[k] = n
	idx.linkTail(n)
	idx.itemCount++
	idx.totalBytes += size
	return n, nil
}

// Lookup returns the node for key, if present.
func (idx *Index) Lookup(key []byte) (*Node, bool) {
	n, ok := idx.nodes[string(key)]
	return n, ok
}

// RemoveNode unlinks n from both the map and the list and updates the
// running counters. It is a no-op if n is not currently indexed (e.g.
// already removed).
func (idx *Index) RemoveNode(n *Node) {
	k := string(n.key)
	if cur, ok := idx.nodes[k]; !ok || cur != n {
		return
	}
	idx.unlink(n)
	delete(idx.nodes, k)
	idx.itemCount--
	idx.totalBytes -= n.size
}

// PopFront removes and returns the head node, or nil if the index is empty.
func (idx *Index) PopFront() *Node {
	n := idx.head
	if n == nil {
		return nil
	}
	idx.RemoveNode(n)
	return n
}

// PopBack removes and returns the tail node, or nil if the index is empty.
func (idx *Index) PopBack() *Node {
	n := idx.tail
	if n == nil {
		return nil
	}
	idx.RemoveNode(n)
	return n
}

// MoveToFront unlinks n and reinserts it at the head. No-op if n is
// already at the head.
func (idx *Index) MoveToFront(n *Node) {
	if n == idx.head {
		return
	}
	idx.unlink(n)
	idx.linkHead(n)
}

// MoveToBack unlinks n and reinserts it at the tail. No-op if n is
// already at the tail.
func (idx *Index) MoveToBack(n *Node) {
	if n == idx.tail {
		return
	}
	idx.unlink(n)
	idx.linkTail(n)
}

// Clear releases every node and resets both counters to zero. It performs
// no notification — callers that need the removal hook invoked per entry
// (the cache layer's Clear) must traverse and call RemoveNode themselves.
func (idx *Index) Clear() {
	idx.nodes = make(map[string]*Node)
	idx.head, idx.tail = nil, nil
	idx.itemCount = 0
	idx.totalBytes = 0
}

// Head returns the oldest surviving node, or nil if empty.
func (idx *Index) Head() *Node { return idx.head }

// Tail returns the newest (or most recently touched) node, or nil if empty.
func (idx *Index) Tail() *Node { return idx.tail }

// Len returns the number of indexed nodes.
func (idx *Index) Len() int { return idx.itemCount }

// TotalBytes returns the sum of every indexed node's size contribution.
func (idx *Index) TotalBytes() int64 { return idx.totalBytes }

// -------------------- list internals --------------------

func (idx *Index) unlink(n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		idx.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		idx.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (idx *Index) linkTail(n *Node) {
	n.prev = idx.tail
	n.next = nil
	if idx.tail != nil {
		idx.tail.next = n
	} else {
		idx.head = n
	}
	idx.tail = n
}

func (idx *Index) linkHead(n *Node) {
	n.next = idx.head
	n.prev = nil
	if idx.head != nil {
		idx.head.prev = n
	} else {
		idx.tail = n
	}
	idx.head = n
}
