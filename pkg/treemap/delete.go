package treemap

// Remove deletes key from the map and returns the removed value. The second
// return is false when the key is absent, in which case the map is
// unchanged.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	n := m.lookup(key)
	if n == nil {
		var zero V

		return zero, false
	}

	value := n.value

	m.removeNode(n)
	m.size--

	return value, true
}

// removeNode splices z out of the tree and rebalances.
func (m *Map[K, V]) removeNode(z *node[K, V]) {
	// Two children: move the in-order successor's pair into z and splice the
	// successor instead. The successor has no left child, so the splice
	// below sees at most one child.
	if z.left != nil && z.right != nil {
		succ := minimum(z.right)
		z.key = succ.key
		z.value = succ.value
		z = succ
	}

	child := z.left
	if child == nil {
		child = z.right
	}

	// The vacated side must be read before transplant rewires the parent.
	parent := z.parent
	wasLeft := parent != nil && z == parent.left
	needFixup := z.color == black

	m.transplant(z, child)

	z.parent = nil
	z.left = nil
	z.right = nil

	// Splicing a red node changes no black-height and cannot create
	// adjacent reds.
	if needFixup {
		m.deleteFixup(child, parent, wasLeft)
	}
}

// transplant replaces node u with node v (possibly nil) in u's parent,
// handling the root case.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// deleteFixup restores the red-black properties after a black node was
// spliced out. x replaced the spliced node and carries the black-height
// deficiency; x may be nil (the spliced node was a leaf), so the vacated
// position is tracked as (parent, xIsLeft) rather than through x itself.
// At most three rotations run per deletion.
func (m *Map[K, V]) deleteFixup(x, parent *node[K, V], xIsLeft bool) {
	for x != m.root && nodeColor(x) == black {
		// The deficient side is one black short, so the sibling subtree
		// still holds at least one black node.
		sibling := childOf(parent, !xIsLeft)
		doAssert(sibling != nil)

		// Case 1: red sibling. Rotate it above the parent; the new sibling
		// is black and one of cases 2-4 finishes the iteration.
		if nodeColor(sibling) == red {
			sibling.color = black
			parent.color = red
			m.rotate(parent, xIsLeft)

			sibling = childOf(parent, !xIsLeft)
			doAssert(sibling != nil)
		}

		innerChild := childOf(sibling, xIsLeft)
		outerChild := childOf(sibling, !xIsLeft)

		// Case 2: black sibling with two black children. Recolor the
		// sibling red and move the deficiency up to the parent.
		if nodeColor(innerChild) == black && nodeColor(outerChild) == black {
			sibling.color = red

			x = parent
			parent = x.parent
			xIsLeft = parent != nil && x == parent.left

			continue
		}

		// Case 3: black sibling, red inner child, black outer child. Rotate
		// the sibling away from the deficiency to reach case 4.
		if nodeColor(outerChild) == black {
			setBlack(innerChild)
			sibling.color = red
			m.rotate(sibling, !xIsLeft)

			sibling = childOf(parent, !xIsLeft)
			outerChild = childOf(sibling, !xIsLeft)
		}

		// Case 4: black sibling, red outer child. The rotation moves one
		// black onto the deficient side and the fixup terminates.
		sibling.color = parent.color
		parent.color = black
		setBlack(outerChild)
		m.rotate(parent, xIsLeft)

		x = m.root
	}

	setBlack(x)
}
