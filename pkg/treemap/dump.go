package treemap

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	fcolor "github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// branch tells the structure printer how a node hangs off its parent.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Fprint writes an ASCII rendering of the tree structure to w, right
// subtree above, left subtree below. Red nodes are colored through
// fatih/color and honor its NoColor override. Debug aid only; the layout
// is not a stable format.
func (m *Map[K, V]) Fprint(w io.Writer) error {
	if m.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")

		return err
	}

	return fprintNode(w, m.root, "", branchRoot)
}

// fprintNode renders n between its subtrees, extending the connector bars
// past every intermediate level.
func fprintNode[K, V any](w io.Writer, n *node[K, V], prefix string, br branch) error {
	if n == nil {
		return nil
	}

	rightPrefix := prefix + "    "
	if br == branchLeft {
		rightPrefix = prefix + "│   "
	}

	if err := fprintNode(w, n.right, rightPrefix, branchRight); err != nil {
		return err
	}

	glyph := "──"

	switch br {
	case branchLeft:
		glyph = "└──"
	case branchRight:
		glyph = "┌──"
	case branchRoot:
	}

	if _, err := fmt.Fprintf(w, "%s%s %s\n", prefix, glyph, nodeLabel(n)); err != nil {
		return err
	}

	leftPrefix := prefix + "    "
	if br == branchRight {
		leftPrefix = prefix + "│   "
	}

	return fprintNode(w, n.left, leftPrefix, branchLeft)
}

// nodeLabel formats a node as key=value with its color marker.
func nodeLabel[K, V any](n *node[K, V]) string {
	if n.color == red {
		return fcolor.New(fcolor.FgRed).Sprintf("%v=%v (R)", n.key, n.value)
	}

	return fmt.Sprintf("%v=%v (B)", n.key, n.value)
}

// Stats summarizes the tree shape for debugging and tests.
type Stats struct {
	// Size is the number of keys in the map.
	Size int

	// Height is the node count on the longest root-to-leaf path.
	Height int

	// BlackHeight is the black node count on the leftmost path, nil leaf
	// excluded. Meaningful only while Validate reports no violation.
	BlackHeight int

	// RedNodes is the number of red nodes in the whole tree.
	RedNodes int
}

// Stats computes shape statistics. Like Validate, it walks the whole tree
// and belongs in tests, debugging sessions, and harnesses, not on hot paths.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{Size: m.size, Height: subtreeHeight(m.root)}

	for n := m.root; n != nil; n = n.left {
		if n.color == black {
			s.BlackHeight++
		}
	}

	s.RedNodes = countRed(m.root)

	return s
}

// String renders the statistics as a table.
func (s Stats) String() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Keys", humanize.Comma(int64(s.Size))})
	tbl.AppendRow(table.Row{"Height", humanize.Comma(int64(s.Height))})
	tbl.AppendRow(table.Row{"Black height", humanize.Comma(int64(s.BlackHeight))})
	tbl.AppendRow(table.Row{"Red nodes", humanize.Comma(int64(s.RedNodes))})

	return tbl.Render()
}

// subtreeHeight returns the node count on the longest path to a leaf.
func subtreeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}

// countRed returns the number of red nodes in the subtree rooted at n.
func countRed[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	count := countRed(n.left) + countRed(n.right)
	if n.color == red {
		count++
	}

	return count
}
