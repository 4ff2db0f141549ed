// Package analysis computes the network statistics the small-world
// comparison is built on: clustering, path lengths, and degree structure.
package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// ErrDisconnected reports a whole-graph path-length request on a graph with
// more than one connected component.
var ErrDisconnected = errors.New("graph is disconnected")

// Options controls metric computation.
type Options struct {
	// LargestComponentOnly restricts path-length computation to the
	// largest connected component when the graph is disconnected. Without
	// it, a disconnected graph is an error rather than a silent subset.
	LargestComponentOnly bool
}

// DegreeSummary condenses the degree distribution.
type DegreeSummary struct {
	Min  int
	Max  int
	Mean float64
}

// MetricBundle holds the computed statistics for one graph. Undefined
// metrics (single-node or empty graphs) are flagged, never guessed.
type MetricBundle struct {
	Nodes      int
	Edges      int
	Components int

	// AvgClustering averages local clustering over all nodes, counting
	// degree<2 nodes as zero. Undefined when no node has two neighbors.
	AvgClustering     float64
	ClusteringDefined bool
	// Transitivity is the global closed-triplet ratio, undefined when the
	// graph has no connected triplets at all.
	Transitivity        float64
	TransitivityDefined bool

	// Density is the edge count over the possible edge count, undefined
	// below two nodes.
	Density        float64
	DensityDefined bool

	// Assortativity is the Pearson correlation of degrees across edge
	// endpoints. Undefined without edges or when every endpoint degree is
	// identical.
	Assortativity        float64
	AssortativityDefined bool

	// AvgPathLength is the mean shortest-path length over ordered node
	// pairs of the component it was computed on.
	AvgPathLength float64
	PathDefined   bool
	// PathRestricted reports that the path metric covers only the largest
	// component of a disconnected graph.
	PathRestricted bool
	ComponentSize  int

	DegreeDist map[int]int
	Degree     DegreeSummary
}

// Compute runs all metrics over an undirected graph.
func Compute(g graph.Undirected, opts Options) (*MetricBundle, error) {
	neighbors := neighborSets(g)

	m := &MetricBundle{
		Nodes:      len(neighbors),
		DegreeDist: make(map[int]int),
	}
	if m.Nodes == 0 {
		return m, nil
	}

	degreeSum := 0
	m.Degree.Min = -1
	for _, nbrs := range neighbors {
		k := len(nbrs)
		m.DegreeDist[k]++
		degreeSum += k
		if m.Degree.Min < 0 || k < m.Degree.Min {
			m.Degree.Min = k
		}
		if k > m.Degree.Max {
			m.Degree.Max = k
		}
	}
	m.Edges = degreeSum / 2
	m.Degree.Mean = float64(degreeSum) / float64(m.Nodes)

	if m.Nodes >= 2 {
		m.Density = float64(2*m.Edges) / float64(m.Nodes*(m.Nodes-1))
		m.DensityDefined = true
	}

	m.AvgClustering, m.ClusteringDefined, m.Transitivity, m.TransitivityDefined = clusteringStats(neighbors)
	m.Assortativity, m.AssortativityDefined = degreeAssortativity(neighbors)

	components := topo.ConnectedComponents(g)
	m.Components = len(components)

	largest := components[0]
	for _, c := range components[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}
	m.ComponentSize = len(largest)

	if m.Components > 1 {
		if !opts.LargestComponentOnly {
			return nil, fmt.Errorf("average path length over %d components: %w", m.Components, ErrDisconnected)
		}
		m.PathRestricted = true
	}

	if len(largest) >= 2 {
		ids := make([]int64, len(largest))
		for i, n := range largest {
			ids[i] = n.ID()
		}
		m.AvgPathLength = averagePathLength(g, ids)
		m.PathDefined = true
	}

	return m, nil
}

// neighborSets builds the undirected adjacency sets for all nodes,
// self-loops excluded.
func neighborSets(g graph.Undirected) map[int64]map[int64]bool {
	sets := make(map[int64]map[int64]bool)
	it := g.Nodes()
	for it.Next() {
		id := it.Node().ID()
		nbrs := make(map[int64]bool)
		jt := g.From(id)
		for jt.Next() {
			nid := jt.Node().ID()
			if nid != id {
				nbrs[nid] = true
			}
		}
		sets[id] = nbrs
	}
	return sets
}
