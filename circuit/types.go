// Package circuit defines the resolved-circuit type and the absolute-index
// bijection for the circuit subpackage of github.com/katalvlaran/gridknot.
package circuit

// Abs converts grid coordinates (row i, column j) of an n×n diagram into a
// single absolute index in [0, n²): idx = i + j·n. Columns therefore occupy
// contiguous index runs, which makes column-edge normalization a plain
// integer comparison.
func Abs(i, j, n int) int {
	return i + j*n
}

// Coords inverts Abs: it decomposes an absolute index into (row i, column j).
func Coords(idx, n int) (i, j int) {
	return idx % n, idx / n
}

// Circuit is the closed combinatorial walk induced by a grid diagram, after
// crossings have been resolved. Nodes holds absolute grid indices, beginning
// and ending at the same index; lifted records which of them must be raised
// along the out-of-plane axis (the over-strand at each crossing).
type Circuit struct {
	n      int
	nodes  []int
	lifted map[int]bool
}

// Resolution returns the resolution n of the traced diagram.
func (c *Circuit) Resolution() int {
	return c.n
}

// Len returns the number of circuit entries, including the closing repeat of
// the starting index. Before crossing insertion this is exactly 2n+1; every
// crossing adds one entry.
func (c *Circuit) Len() int {
	return len(c.nodes)
}

// Node returns the absolute grid index at position k along the walk.
// k must lie in [0, Len()); out-of-range access panics (caller responsibility).
func (c *Circuit) Node(k int) int {
	return c.nodes[k]
}

// Nodes returns a copy of the resolved walk.
func (c *Circuit) Nodes() []int {
	out := make([]int, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// Lifted reports whether the absolute index idx is an over-strand vertex.
func (c *Circuit) Lifted(idx int) bool {
	return c.lifted[idx]
}

// Crossings returns the number of crossings resolved into the walk, which
// equals the number of lifted indices.
func (c *Circuit) Crossings() int {
	return len(c.lifted)
}
