// Package simplebst provides a plain unbalanced binary search tree. It
// exists as a differential-testing baseline and degenerate-input contrast
// for pkg/treemap: sorted insertion degrades it to a linked list, which is
// exactly the behavior the balanced map's tests measure against. Not for
// production use.
package simplebst

import (
	"cmp"
	"iter"
)

// Tree is an unbalanced binary search tree from K to V. The zero value is
// an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// node is an internal BST node. No parent link and no balancing metadata.
type node[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Insert stores value under key, replacing the value in place when the key
// is already present.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++

		return
	}

	current := t.root

	for {
		c := cmp.Compare(key, current.key)

		switch {
		case c == 0:
			current.value = value

			return
		case c < 0:
			if current.left == nil {
				current.left = &node[K, V]{key: key, value: value}
				t.size++

				return
			}

			current = current.left
		default:
			if current.right == nil {
				current.right = &node[K, V]{key: key, value: value}
				t.size++

				return
			}

			current = current.right
		}
	}
}

// Get returns the value stored for key. The second return is false when the
// key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	current := t.root

	for current != nil {
		c := cmp.Compare(key, current.key)

		switch {
		case c == 0:
			return current.value, true
		case c < 0:
			current = current.left
		default:
			current = current.right
		}
	}

	var zero V

	return zero, false
}

// All returns the key-value pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

// Height returns the node count on the longest root-to-leaf path. Sorted
// input drives this to Len().
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// inorder walks the subtree in key order, stopping when yield returns false.
func inorder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	if !inorder(n.left, yield) {
		return false
	}

	if !yield(n.key, n.value) {
		return false
	}

	return inorder(n.right, yield)
}

// height returns the longest path length below n, in nodes.
func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
