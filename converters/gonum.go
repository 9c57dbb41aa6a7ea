package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/betweenness/core"
)

// ErrNilGraph is returned when a nil graph is passed to a converter.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonum copies g into a gonum simple.UndirectedGraph. Every vertex becomes
// node int64(v), including isolated ones. Self-loops are dropped and
// parallel edges collapse to one, since simple graphs allow neither.
// A nil g yields an empty graph.
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	dst := simple.NewUndirectedGraph()
	if g == nil {
		return dst
	}
	for v := 0; v < g.Order(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for v := 0; v < g.Order(); v++ {
		for _, u := range g.Neighbors(v) {
			if u <= v {
				continue
			}
			dst.SetEdge(dst.NewEdge(simple.Node(v), simple.Node(u)))
		}
	}

	return dst
}

// FromGonum builds a core.Graph from any gonum undirected graph. Nodes are
// ordered by ascending ID; ids[i] is the gonum ID of vertex i. Neighbour lists
// follow the same order, so the result does not depend on gonum's map
// iteration.
func FromGonum(src graph.Undirected) (*core.Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrNilGraph
	}

	ids := make([]int64, 0)
	for nodes := src.Nodes(); nodes.Next(); {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]int, len(ids))
	for i, id := range ids {
		for nbrs := src.From(id); nbrs.Next(); {
			j, ok := index[nbrs.Node().ID()]
			if !ok {
				return nil, nil, fmt.Errorf("converters: FromGonum: neighbour %d of %d: %w",
					nbrs.Node().ID(), id, core.ErrVertexNotFound)
			}
			adj[i] = append(adj[i], j)
		}
		slices.Sort(adj[i])
	}

	g, err := core.NewGraph(adj)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
	}

	return g, ids, nil
}
