// Package randomnet generates seeded random baseline graphs matched in size
// to the real network, for small-world comparison.
package randomnet

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"

	"gamernet/pkg/analysis"
	"gamernet/pkg/bipartite"
)

// Model selects the random-graph model.
type Model string

const (
	// ModelBipartite generates a random bipartite graph matched to the
	// real network's two-mode sizes, then projects it the same way the
	// real network was projected.
	ModelBipartite Model = "bipartite"
	// ModelGnm generates an Erdős–Rényi G(n,m) graph matched to the
	// projected graph's node and edge counts.
	ModelGnm Model = "gnm"
)

// Targets are the real network's sizes the baselines must match. Tops is the
// projected-away side (authors for a subreddit projection), Bottoms the
// projected side; Nodes and Edges describe the projected graph itself.
type Targets struct {
	Tops           int
	Bottoms        int
	BipartiteEdges int
	Nodes          int
	Edges          int
}

// Options controls baseline generation.
type Options struct {
	Model      Model
	Replicates int
	Seed       uint64
}

// Baseline is one generated graph with its computed metrics.
type Baseline struct {
	Graph   graph.Undirected
	Metrics *analysis.MetricBundle
}

// Set is a batch of independent baselines generated from one seed, carrying
// the targets they were generated against.
type Set struct {
	Model     Model
	Seed      uint64
	Targets   Targets
	Baselines []Baseline
}

// Generate produces opts.Replicates independent baseline graphs from a
// single seeded source. The same seed always yields the same set.
func Generate(t Targets, opts Options) (*Set, error) {
	if opts.Replicates < 1 {
		return nil, fmt.Errorf("baseline replicates must be at least 1, got %d", opts.Replicates)
	}
	switch opts.Model {
	case ModelBipartite:
		if t.Tops < 0 || t.Bottoms < 0 || t.BipartiteEdges < 0 {
			return nil, fmt.Errorf("negative bipartite targets: %+v", t)
		}
		if t.BipartiteEdges > t.Tops*t.Bottoms {
			return nil, fmt.Errorf("bipartite target of %d edges exceeds %d×%d capacity", t.BipartiteEdges, t.Tops, t.Bottoms)
		}
	case ModelGnm:
		if t.Nodes < 0 || t.Edges < 0 {
			return nil, fmt.Errorf("negative gnm targets: %+v", t)
		}
		if t.Edges > t.Nodes*(t.Nodes-1)/2 {
			return nil, fmt.Errorf("gnm target of %d edges exceeds capacity of %d nodes", t.Edges, t.Nodes)
		}
	default:
		return nil, fmt.Errorf("unknown baseline model %q", opts.Model)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	set := &Set{
		Model:     opts.Model,
		Seed:      opts.Seed,
		Targets:   t,
		Baselines: make([]Baseline, 0, opts.Replicates),
	}
	for i := 0; i < opts.Replicates; i++ {
		var g graph.Undirected
		switch opts.Model {
		case ModelBipartite:
			g = randomBipartiteProjection(t.Tops, t.Bottoms, t.BipartiteEdges, rng)
		case ModelGnm:
			dst := simple.NewUndirectedGraph()
			if err := gen.Gnm(dst, t.Nodes, t.Edges, rng); err != nil {
				return nil, fmt.Errorf("generate gnm baseline %d: %w", i, err)
			}
			g = dst
		}

		metrics, err := analysis.Compute(g, analysis.Options{LargestComponentOnly: true})
		if err != nil {
			return nil, fmt.Errorf("measure baseline %d: %w", i, err)
		}
		set.Baselines = append(set.Baselines, Baseline{Graph: g, Metrics: metrics})
	}
	return set, nil
}

// randomBipartiteProjection samples a bipartite graph with the given side
// sizes and exactly `edges` distinct bipartite edges, then projects it onto
// the bottom side with the shared projection semantics.
func randomBipartiteProjection(tops, bottoms, edges int, rng *rand.Rand) graph.Undirected {
	topNeighbors := make([][]int64, tops)
	seen := make(map[[2]int]bool, edges)
	for len(seen) < edges {
		pair := [2]int{rng.IntN(tops), rng.IntN(bottoms)}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		topNeighbors[pair[0]] = append(topNeighbors[pair[0]], int64(pair[1]))
	}

	bottomIDs := make([]int64, bottoms)
	for i := range bottomIDs {
		bottomIDs[i] = int64(i)
	}
	return bipartite.ProjectNeighbors(bottomIDs, topNeighbors)
}
