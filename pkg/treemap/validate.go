package treemap

import (
	"errors"
	"fmt"
)

// Validation errors. Validate wraps these with the offending key, so match
// with errors.Is.
var (
	// ErrRootNotBlack reports a red root.
	ErrRootNotBlack = errors.New("treemap: root is not black")

	// ErrRedRedViolation reports a red node with a red child.
	ErrRedRedViolation = errors.New("treemap: red node has a red child")

	// ErrBlackHeightMismatch reports unequal black-heights below a node.
	ErrBlackHeightMismatch = errors.New("treemap: black-height mismatch")

	// ErrOrderViolation reports an in-order key sequence that is not
	// strictly increasing.
	ErrOrderViolation = errors.New("treemap: keys out of order")
)

// Validate walks the whole tree and reports the first red-black invariant
// violation, or nil when every invariant holds. It never mutates the map.
// Validate exists for tests and debugging; production code paths never need
// it.
func (m *Map[K, V]) Validate() error {
	if m.root == nil {
		return nil
	}

	if m.root.color != black {
		return fmt.Errorf("%w: key %v", ErrRootNotBlack, m.root.key)
	}

	if _, err := checkSubtree(m.root); err != nil {
		return err
	}

	return m.checkOrder()
}

// checkSubtree verifies colors and black-heights below n and returns the
// black-height of the subtree rooted at n. Nil leaves are black and count
// one.
func checkSubtree[K, V any](n *node[K, V]) (int, error) {
	if n == nil {
		return 1, nil
	}

	if n.color == red && (nodeColor(n.left) == red || nodeColor(n.right) == red) {
		return 0, fmt.Errorf("%w: key %v", ErrRedRedViolation, n.key)
	}

	leftHeight, err := checkSubtree(n.left)
	if err != nil {
		return 0, err
	}

	rightHeight, err := checkSubtree(n.right)
	if err != nil {
		return 0, err
	}

	if leftHeight != rightHeight {
		return 0, fmt.Errorf("%w: key %v (left %d, right %d)",
			ErrBlackHeightMismatch, n.key, leftHeight, rightHeight)
	}

	if n.color == black {
		leftHeight++
	}

	return leftHeight, nil
}

// checkOrder verifies that the in-order key sequence is strictly increasing.
func (m *Map[K, V]) checkOrder() error {
	var prev *node[K, V]

	for n := m.first(); n != nil; n = successor(n) {
		if prev != nil && m.cmp(prev.key, n.key) >= 0 {
			return fmt.Errorf("%w: key %v does not sort after %v",
				ErrOrderViolation, n.key, prev.key)
		}

		prev = n
	}

	return nil
}
