// Package diffusion summarizes the complexity of a weighted assembly graph:
// it runs a fixed-budget diffusion over the row-normalized adjacency matrix
// and reports the Shannon entropy of the resulting distribution together
// with the per-node diffusion weight.
package diffusion

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Edge is one directed half of an undirected weighted edge.
type Edge struct {
	To     int
	Weight float64
}

// Graph is a weighted undirected graph over integer node ids.  Ids need not
// be dense.
type Graph struct {
	adj map[int][]Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: map[int][]Edge{}}
}

// AddEdge records an undirected edge; both directions are stored.
func (g *Graph) AddEdge(n1, n2 int, weight float64) {
	g.adj[n1] = append(g.adj[n1], Edge{To: n2, Weight: weight})
	g.adj[n2] = append(g.adj[n2], Edge{To: n1, Weight: weight})
}

// NumNodes returns the number of distinct nodes seen so far.
func (g *Graph) NumNodes() int { return len(g.adj) }

// Nodes returns the node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Edges returns the adjacency of one node, in insertion order.
func (g *Graph) Edges(node int) []Edge { return g.adj[node] }

// ParseLinks reads GFA-style link lines from r into a graph.  A line is
// relevant only when its first whitespace-delimited field is the literal
// "L"; fields 2 and 4 are the node ids.  A trailing colon-delimited field
// tagged "SC" supplies the integer edge weight; without one the weight
// defaults to 1.
func ParseLinks(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "L" {
			continue
		}
		if len(fields) < 4 {
			return nil, errors.Errorf("diffusion.ParseLinks: line %d has fewer fields than expected", lineIdx)
		}
		n1, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "diffusion.ParseLinks: bad node id on line %d", lineIdx)
		}
		n2, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, errors.Wrapf(err, "diffusion.ParseLinks: bad node id on line %d", lineIdx)
		}
		weight := 1
		if len(fields) > 6 {
			for _, f := range fields[6:] {
				tag := strings.Split(f, ":")
				if tag[0] != "SC" {
					continue
				}
				if len(tag) < 3 {
					return nil, errors.Errorf("diffusion.ParseLinks: malformed SC tag %q on line %d", f, lineIdx)
				}
				if weight, err = strconv.Atoi(tag[2]); err != nil {
					return nil, errors.Wrapf(err, "diffusion.ParseLinks: bad SC weight on line %d", lineIdx)
				}
			}
		}
		g.AddEdge(n1, n2, float64(weight))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromPath reads a link file (optionally gzipped) into a graph.
func FromPath(path string) (g *Graph, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ParseLinks(reader)
}
