package bipartite

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Projection is a weighted one-mode projection of the bipartite graph. The
// edge weight between two nodes is the number of top-side entities they
// share, accumulated rather than duplicated.
type Projection struct {
	Graph *simple.WeightedUndirectedGraph
	Side  Side
	names map[int64]string
}

// ProjectNeighbors builds the weighted projection of any bipartite graph,
// given the bottom node ids and each top node's bottom-side neighbor list.
// Used for both the real network and random baselines so both sides of the
// comparison share the same projection semantics.
func ProjectNeighbors(bottoms []int64, topNeighbors [][]int64) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range bottoms {
		g.AddNode(simple.Node(id))
	}

	type pair struct{ a, b int64 }
	weights := make(map[pair]float64)
	for _, neighbors := range topNeighbors {
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				a, b := neighbors[i], neighbors[j]
				if a > b {
					a, b = b, a
				}
				weights[pair{a, b}]++
			}
		}
	}

	for p, w := range weights {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(p.a), simple.Node(p.b), w))
	}
	return g
}

// Name returns the entity name behind a projected node id.
func (p *Projection) Name(id int64) string { return p.names[id] }

// NodeCount returns the number of projected nodes, isolated ones included.
func (p *Projection) NodeCount() int { return p.Graph.Nodes().Len() }

// EdgeCount returns the number of projected edges.
func (p *Projection) EdgeCount() int { return p.Graph.Edges().Len() }

// Weight returns the co-participation weight between two named entities.
func (p *Projection) Weight(a, b string) (float64, bool) {
	aid, ok := p.id(a)
	if !ok {
		return 0, false
	}
	bid, ok := p.id(b)
	if !ok {
		return 0, false
	}
	if !p.Graph.HasEdgeBetween(aid, bid) {
		return 0, false
	}
	return p.Graph.Weight(aid, bid)
}

func (p *Projection) id(name string) (int64, bool) {
	for id, n := range p.names {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// NodeDegree pairs an entity name with its projected degree.
type NodeDegree struct {
	Name   string
	Degree int
}

// TopDegrees returns the n highest-degree entities, ties broken by name for
// stable output.
func (p *Projection) TopDegrees(n int) []NodeDegree {
	ranked := make([]NodeDegree, 0, len(p.names))
	for id, name := range p.names {
		ranked = append(ranked, NodeDegree{Name: name, Degree: p.Graph.From(id).Len()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Degree != ranked[j].Degree {
			return ranked[i].Degree > ranked[j].Degree
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
