// Package treemap provides an ordered key-value map backed by a red-black
// tree. Insert, Get, and Remove run in O(log N) worst case regardless of
// insertion order, and in-order iteration visits keys in ascending order
// under the map's comparison function.
//
// Keys are unique: inserting an existing key replaces its value in place and
// returns the previous value. Absence of a key is a regular result, never an
// error. The map provides no internal synchronization; callers that share a
// map across goroutines must serialize mutating access themselves.
package treemap

import "cmp"

// color represents the red-black tree node color.
type color bool

// Red-black tree color constants.
const (
	red   color = false
	black color = true
)

// node is an internal red-black tree node.
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	parent      *node[K, V]
	color       color
}

// Map is an ordered key-value map. The zero value is not usable; construct
// with New or NewFunc.
type Map[K, V any] struct {
	root *node[K, V]
	size int
	cmp  func(K, K) int

	// rotations counts link-surgery rotations so tests can check the
	// per-operation rotation bounds.
	rotations uint64
}

// New creates an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty map ordered by the given comparison function.
// cmp must define a total order: negative when a sorts before b, zero when
// they are equal, positive when a sorts after b. Behavior under an
// inconsistent ordering is undefined.
func NewFunc[K, V any](cmp func(K, K) int) *Map[K, V] {
	if cmp == nil {
		panic("treemap: comparison function must not be nil")
	}

	return &Map[K, V]{cmp: cmp}
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Get returns the value stored for key. The second return is false when the
// key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.value, true
	}

	var zero V

	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil when the key
// is absent. The pointer is valid only until the map is next modified:
// removing any key can relocate stored pairs between nodes, so re-fetch the
// pointer after a mutation.
func (m *Map[K, V]) GetMut(key K) *V {
	if n := m.lookup(key); n != nil {
		return &n.value
	}

	return nil
}

// lookup performs standard BST descent by key comparison.
func (m *Map[K, V]) lookup(key K) *node[K, V] {
	current := m.root

	for current != nil {
		c := m.cmp(key, current.key)

		switch {
		case c == 0:
			return current
		case c < 0:
			current = current.left
		default:
			current = current.right
		}
	}

	return nil
}

// rotate performs a rotation at node n. When left is true, rotates left
// (n must have a right child); otherwise rotates right (n must have a left
// child). Rotations reassign links only; colors and keys are untouched, so
// the in-order key sequence is preserved.
func (m *Map[K, V]) rotate(n *node[K, V], left bool) {
	var pivot *node[K, V]

	if left {
		pivot = n.right
		doAssert(pivot != nil)

		n.right = pivot.left
		if pivot.left != nil {
			pivot.left.parent = n
		}

		pivot.left = n
	} else {
		pivot = n.left
		doAssert(pivot != nil)

		n.left = pivot.right
		if pivot.right != nil {
			pivot.right.parent = n
		}

		pivot.right = n
	}

	pivot.parent = n.parent

	switch {
	case n.parent == nil:
		m.root = pivot
	case n == n.parent.left:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}

	n.parent = pivot
	m.rotations++
}

// nodeColor returns the color of a node, treating nil as black.
func nodeColor[K, V any](n *node[K, V]) color {
	if n == nil {
		return black
	}

	return n.color
}

// setBlack sets a node's color to black if it is non-nil.
func setBlack[K, V any](n *node[K, V]) {
	if n != nil {
		n.color = black
	}
}

// childOf returns the left or right child of a node.
// When left is true, returns n.left; otherwise n.right.
func childOf[K, V any](n *node[K, V], left bool) *node[K, V] {
	if n == nil {
		return nil
	}

	if left {
		return n.left
	}

	return n.right
}

// minimum returns the leftmost node in the subtree rooted at n.
func minimum[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// maximum returns the rightmost node in the subtree rooted at n.
func maximum[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// doAssert panics when an internal invariant does not hold.
func doAssert(condition bool) {
	if !condition {
		panic("treemap internal assertion failed")
	}
}
