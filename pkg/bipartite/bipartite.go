// Package bipartite builds the two-mode author–subreddit graph and its
// weighted one-mode projections.
package bipartite

import (
	"gonum.org/v1/gonum/graph/simple"

	"gamernet/pkg/dataset"
)

// Side selects which entity class becomes the projected nodes.
type Side string

const (
	SideSubreddit Side = "subreddit"
	SideAuthor    Side = "author"
)

// Graph is the bipartite interaction graph: authors on one side, subreddits
// on the other, one edge per observed author–subreddit pair. Repeated
// interactions do not create parallel edges.
type Graph struct {
	g       *simple.UndirectedGraph
	authors map[string]int64
	subs    map[string]int64
	names   map[int64]string
	nextID  int64
	edges   int
}

// Build constructs the bipartite graph from interaction records.
func Build(records []dataset.Record) *Graph {
	b := &Graph{
		g:       simple.NewUndirectedGraph(),
		authors: make(map[string]int64),
		subs:    make(map[string]int64),
		names:   make(map[int64]string),
	}

	for _, rec := range records {
		aid := b.node(b.authors, rec.Author)
		sid := b.node(b.subs, rec.Subreddit)
		if !b.g.HasEdgeBetween(aid, sid) {
			b.g.SetEdge(b.g.NewEdge(simple.Node(aid), simple.Node(sid)))
			b.edges++
		}
	}
	return b
}

// node returns the id for name in the given side table, allocating one on
// first sight.
func (b *Graph) node(table map[string]int64, name string) int64 {
	if id, ok := table[name]; ok {
		return id
	}
	id := b.nextID
	b.nextID++
	table[name] = id
	b.names[id] = name
	b.g.AddNode(simple.Node(id))
	return id
}

// AuthorCount returns the number of distinct authors.
func (b *Graph) AuthorCount() int { return len(b.authors) }

// SubredditCount returns the number of distinct subreddits.
func (b *Graph) SubredditCount() int { return len(b.subs) }

// EdgeCount returns the number of distinct author–subreddit edges.
func (b *Graph) EdgeCount() int { return b.edges }

// Project builds the weighted one-mode projection onto the chosen side.
// Every entity of that side becomes a node, co-participation partners or
// not, so an entity with no partner is an isolated node.
func (b *Graph) Project(side Side) *Projection {
	bottomTable := b.subs
	topTable := b.authors
	if side == SideAuthor {
		bottomTable = b.authors
		topTable = b.subs
	}

	bottoms := make([]int64, 0, len(bottomTable))
	for _, id := range bottomTable {
		bottoms = append(bottoms, id)
	}

	topNeighbors := make([][]int64, 0, len(topTable))
	for _, tid := range topTable {
		neighbors := make([]int64, 0)
		it := b.g.From(tid)
		for it.Next() {
			neighbors = append(neighbors, it.Node().ID())
		}
		topNeighbors = append(topNeighbors, neighbors)
	}

	names := make(map[int64]string, len(bottoms))
	for _, id := range bottoms {
		names[id] = b.names[id]
	}

	return &Projection{
		Graph: ProjectNeighbors(bottoms, topNeighbors),
		Side:  side,
		names: names,
	}
}
