package treemap

// Insert stores value under key. If the key is already present its value is
// replaced in place and the previous value is returned with true; the tree
// shape does not change. A fresh key grows the map by one node, colored red
// at the leaf position found by descent, and returns the zero V with false.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	var parent *node[K, V]

	c := 0
	current := m.root

	for current != nil {
		c = m.cmp(key, current.key)
		if c == 0 {
			prev := current.value
			current.value = value

			return prev, true
		}

		parent = current

		if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}

	n := &node[K, V]{key: key, value: value, color: red, parent: parent}

	switch {
	case parent == nil:
		m.root = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}

	m.insertFixup(n)
	m.size++

	var zero V

	return zero, false
}

// insertFixup restores the red-black properties after attaching a red node.
// At most two rotations run per insertion; the red-uncle case only recolors
// and pushes the violation toward the root.
func (m *Map[K, V]) insertFixup(n *node[K, V]) {
	for n != m.root && nodeColor(n.parent) == red {
		parent := n.parent

		// A red parent is never the root, so the grandparent exists.
		grandparent := parent.parent
		doAssert(grandparent != nil)

		n = m.insertFixupCase(n, parent, grandparent, parent == grandparent.left)
	}

	m.root.color = black
}

// insertFixupCase handles one side of the insert fixup. When leftCase is
// true, parent is grandparent.left; the mirror case flips every side. It
// returns the node the next loop iteration examines.
func (m *Map[K, V]) insertFixupCase(n, parent, grandparent *node[K, V], leftCase bool) *node[K, V] {
	uncle := childOf(grandparent, !leftCase)

	// Red uncle: recolor and move the violation up to the grandparent.
	if nodeColor(uncle) == red {
		parent.color = black
		uncle.color = black
		grandparent.color = red

		return grandparent
	}

	// Black uncle, n is the inner child: rotate into the straight-line shape.
	if n == childOf(parent, !leftCase) {
		m.rotate(parent, leftCase)
		n, parent = parent, n
	}

	// Black uncle, straight line: recolor and rotate the grandparent. No
	// consecutive-red violation can remain above this point.
	parent.color = black
	grandparent.color = red
	m.rotate(grandparent, !leftCase)

	return n
}
