package diffusion

import (
	"fmt"
	"math"
)

// Opts holds the diffusion tunables.
type Opts struct {
	// MaxNodes caps the node count: the transition matrix is dense and
	// quadratic in it.  <= 0 means no cap.
	MaxNodes int
}

// DefaultOpts is the default diffusion configuration.
var DefaultOpts = Opts{
	MaxNodes: 6000,
}

// NodeWeight is one node's final diffusion weight.
type NodeWeight struct {
	Node   int
	Weight float64
}

// TooLargeError is returned when the graph exceeds the configured node cap.
// It is reported before any quadratic allocation is attempted.
type TooLargeError struct {
	Nodes int
	Max   int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("diffusion: graph has %d nodes, exceeding the cap of %d", e.Nodes, e.Max)
}

// IsolatedNodeError is returned when a node has zero total edge weight, for
// which the transition row is undefined.
type IsolatedNodeError struct {
	Node int
}

func (e *IsolatedNodeError) Error() string {
	return fmt.Sprintf("diffusion: node %d has zero total edge weight", e.Node)
}

// matrix is a dense square matrix in row-major order.
type matrix struct {
	n    int
	data []float64 // row-major n*n array.
}

func newMatrix(n int) matrix {
	return matrix{n: n, data: make([]float64, n*n)}
}

func (m matrix) at(i, j int) float64     { return m.data[i*m.n+j] }
func (m matrix) set(i, j int, v float64) { m.data[i*m.n+j] = v }

// applyLeft computes dst = src * m (row vector times matrix), the
// mass-preserving direction for a row-stochastic matrix.
func (m matrix) applyLeft(dst, src []float64) {
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < m.n; i++ {
		si := src[i]
		if si == 0 {
			continue
		}
		row := m.data[i*m.n : (i+1)*m.n]
		for j, v := range row {
			dst[j] += si * v
		}
	}
}

// Entropy diffuses a uniform distribution over the graph and returns the
// Shannon entropy (base 2) of the final distribution plus the per-node
// weight list, in ascending node-id order.  The adjacency matrix is
// row-normalized into a transition matrix and applied exactly n times,
// where n is the node count; the iteration budget is fixed, not a
// convergence test.
//
// A graph beyond opts.MaxNodes yields a *TooLargeError; a node with zero
// total edge weight yields a *IsolatedNodeError.  In both cases no partial
// result is returned.
func Entropy(g *Graph, opts Opts) (float64, []NodeWeight, error) {
	n := g.NumNodes()
	if n == 0 {
		return 0, nil, nil
	}
	if opts.MaxNodes > 0 && n > opts.MaxNodes {
		return 0, nil, &TooLargeError{Nodes: n, Max: opts.MaxNodes}
	}

	ids := g.Nodes()
	row := make(map[int]int, n)
	for i, id := range ids {
		row[id] = i
	}

	trans := newMatrix(n)
	for i, id := range ids {
		// A repeated edge overwrites, it does not accumulate.
		for _, e := range g.Edges(id) {
			trans.set(i, row[e.To], e.Weight)
		}
		var sum float64
		for j := 0; j < n; j++ {
			sum += trans.at(i, j)
		}
		if sum <= 0 {
			return 0, nil, &IsolatedNodeError{Node: id}
		}
		for j := 0; j < n; j++ {
			trans.set(i, j, trans.at(i, j)/sum)
		}
	}

	y := make([]float64, n)
	for i := range y {
		y[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	for iter := 0; iter < n; iter++ {
		trans.applyLeft(next, y)
		y, next = next, y
	}

	var entropy float64
	weights := make([]NodeWeight, n)
	for i, id := range ids {
		if y[i] > 0 {
			entropy -= y[i] * math.Log2(y[i])
		}
		weights[i] = NodeWeight{Node: id, Weight: y[i] * float64(n)}
	}
	return entropy, weights, nil
}
