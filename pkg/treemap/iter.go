package treemap

import "iter"

// All returns the key-value pairs in ascending key order. The sequence is
// lazy and can be ranged over any number of times. Mutating the map while a
// range is in progress invalidates the walk.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.first(); n != nil; n = successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain empties the map and returns its former pairs in ascending key order.
// The map is empty as soon as Drain returns, whether or not the sequence is
// consumed.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	root := m.root
	m.root = nil
	m.size = 0

	return func(yield func(K, V) bool) {
		if root == nil {
			return
		}

		for n := minimum(root); n != nil; n = successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// first returns the node holding the smallest key, or nil for an empty map.
func (m *Map[K, V]) first() *node[K, V] {
	if m.root == nil {
		return nil
	}

	return minimum(m.root)
}

// last returns the node holding the largest key, or nil for an empty map.
func (m *Map[K, V]) last() *node[K, V] {
	if m.root == nil {
		return nil
	}

	return maximum(m.root)
}

// successor returns the in-order next node, or nil past the maximum.
func successor[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil {
		return minimum(n.right)
	}

	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}

	return n.parent
}

// predecessor returns the in-order previous node, or nil before the minimum.
func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil {
		return maximum(n.left)
	}

	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}

	return n.parent
}

// Iterator is a restartable cursor over the map in key order. Iterators are
// values: Next and Prev return new cursors and the receiver stays put.
// Mutating the map invalidates every outstanding Iterator.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// Min returns a cursor on the smallest key. The cursor is not Valid when
// the map is empty.
func (m *Map[K, V]) Min() Iterator[K, V] {
	return Iterator[K, V]{n: m.first()}
}

// Max returns a cursor on the largest key. The cursor is not Valid when the
// map is empty.
func (m *Map[K, V]) Max() Iterator[K, V] {
	return Iterator[K, V]{n: m.last()}
}

// Valid reports whether the cursor is positioned on a pair.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil
}

// Next returns a cursor on the next key in ascending order. Past the
// maximum the cursor stops being Valid; Next on an invalid cursor stays
// invalid.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.n == nil {
		return it
	}

	return Iterator[K, V]{n: successor(it.n)}
}

// Prev returns a cursor on the previous key in ascending order. Before the
// minimum the cursor stops being Valid; Prev on an invalid cursor stays
// invalid.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.n == nil {
		return it
	}

	return Iterator[K, V]{n: predecessor(it.n)}
}

// Key returns the key under the cursor. The cursor must be Valid.
func (it Iterator[K, V]) Key() K {
	return it.n.key
}

// Value returns the value under the cursor. The cursor must be Valid.
func (it Iterator[K, V]) Value() V {
	return it.n.value
}
