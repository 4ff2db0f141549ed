package analysis

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func buildGraph(t *testing.T, nodes int, edges [][2]int64) *simple.UndirectedGraph {
	t.Helper()
	g := simple.NewUndirectedGraph()
	for i := 0; i < nodes; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		g.SetEdge(g.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	return g
}

func TestComputeTriangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})

	m, err := Compute(g, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if m.Nodes != 3 || m.Edges != 3 {
		t.Errorf("size = %d nodes / %d edges, want 3/3", m.Nodes, m.Edges)
	}
	if !m.ClusteringDefined || math.Abs(m.AvgClustering-1.0) > 1e-9 {
		t.Errorf("AvgClustering = %v (defined=%v), want 1.0", m.AvgClustering, m.ClusteringDefined)
	}
	if !m.TransitivityDefined || math.Abs(m.Transitivity-1.0) > 1e-9 {
		t.Errorf("Transitivity = %v (defined=%v), want 1.0", m.Transitivity, m.TransitivityDefined)
	}
	if !m.DensityDefined || math.Abs(m.Density-1.0) > 1e-9 {
		t.Errorf("Density = %v (defined=%v), want 1.0", m.Density, m.DensityDefined)
	}
	if m.AssortativityDefined {
		t.Error("assortativity should be undefined on a regular graph")
	}
	if !m.PathDefined || math.Abs(m.AvgPathLength-1.0) > 1e-9 {
		t.Errorf("AvgPathLength = %v (defined=%v), want 1.0", m.AvgPathLength, m.PathDefined)
	}
	if m.PathRestricted {
		t.Error("connected graph should not report a restriction")
	}
	if m.DegreeDist[2] != 3 {
		t.Errorf("DegreeDist = %v, want all three nodes at degree 2", m.DegreeDist)
	}
}

func TestComputePathGraph(t *testing.T) {
	// 0 - 1 - 2: no triangles, average distance 8/6.
	g := buildGraph(t, 3, [][2]int64{{0, 1}, {1, 2}})

	m, err := Compute(g, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if !m.ClusteringDefined || m.AvgClustering != 0 {
		t.Errorf("AvgClustering = %v (defined=%v), want 0 defined", m.AvgClustering, m.ClusteringDefined)
	}
	// The middle node centers a connected triplet, so transitivity is a
	// defined zero rather than undefined.
	if !m.TransitivityDefined || m.Transitivity != 0 {
		t.Errorf("Transitivity = %v (defined=%v), want a defined 0", m.Transitivity, m.TransitivityDefined)
	}
	if !m.DensityDefined || math.Abs(m.Density-2.0/3.0) > 1e-9 {
		t.Errorf("Density = %v (defined=%v), want 2/3", m.Density, m.DensityDefined)
	}
	if !m.AssortativityDefined || math.Abs(m.Assortativity-(-1.0)) > 1e-9 {
		t.Errorf("Assortativity = %v (defined=%v), want -1", m.Assortativity, m.AssortativityDefined)
	}
	want := 8.0 / 6.0
	if math.Abs(m.AvgPathLength-want) > 1e-9 {
		t.Errorf("AvgPathLength = %v, want %v", m.AvgPathLength, want)
	}
}

func TestComputeStar(t *testing.T) {
	g := buildGraph(t, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}})

	m, err := Compute(g, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if math.Abs(m.AvgPathLength-1.5) > 1e-9 {
		t.Errorf("AvgPathLength = %v, want 1.5", m.AvgPathLength)
	}
	if m.AvgPathLength < 1 {
		t.Errorf("average path length %v below 1 despite edges", m.AvgPathLength)
	}
	if m.Degree.Max != 3 || m.Degree.Min != 1 {
		t.Errorf("Degree = %+v, want min 1 max 3", m.Degree)
	}
	if math.Abs(m.Degree.Mean-1.5) > 1e-9 {
		t.Errorf("Degree.Mean = %v, want 1.5", m.Degree.Mean)
	}
	if !m.AssortativityDefined || math.Abs(m.Assortativity-(-1.0)) > 1e-9 {
		t.Errorf("Assortativity = %v (defined=%v), want -1 for a star", m.Assortativity, m.AssortativityDefined)
	}
}

func TestComputeSingleEdge(t *testing.T) {
	// Two degree-1 nodes: no node centers a triplet, so both clustering and
	// transitivity are undefined, while density is a defined 1.
	g := buildGraph(t, 2, [][2]int64{{0, 1}})

	m, err := Compute(g, Options{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if m.ClusteringDefined {
		t.Error("clustering should be undefined without a degree-2 node")
	}
	if m.TransitivityDefined {
		t.Error("transitivity should be undefined without connected triplets")
	}
	if !m.DensityDefined || math.Abs(m.Density-1.0) > 1e-9 {
		t.Errorf("Density = %v (defined=%v), want 1.0", m.Density, m.DensityDefined)
	}
	if m.AssortativityDefined {
		t.Error("assortativity should be undefined when endpoint degrees never vary")
	}
}

func TestComputeDisconnectedWithoutOptIn(t *testing.T) {
	g := buildGraph(t, 4, [][2]int64{{0, 1}, {2, 3}})

	_, err := Compute(g, Options{})
	if err == nil {
		t.Fatal("expected error for whole-graph paths on a disconnected graph")
	}
	if !errors.Is(err, ErrDisconnected) {
		t.Errorf("expected ErrDisconnected, got %v", err)
	}
}

func TestComputeDisconnectedRestricted(t *testing.T) {
	// Triangle plus an isolated pair: paths restricted to the triangle.
	g := buildGraph(t, 5, [][2]int64{{0, 1}, {1, 2}, {0, 2}, {3, 4}})

	m, err := Compute(g, Options{LargestComponentOnly: true})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if m.Components != 2 {
		t.Errorf("Components = %d, want 2", m.Components)
	}
	if !m.PathRestricted {
		t.Error("expected PathRestricted to be reported")
	}
	if m.ComponentSize != 3 {
		t.Errorf("ComponentSize = %d, want 3", m.ComponentSize)
	}
	if !m.PathDefined || math.Abs(m.AvgPathLength-1.0) > 1e-9 {
		t.Errorf("AvgPathLength = %v (defined=%v), want 1.0 over the triangle", m.AvgPathLength, m.PathDefined)
	}
}

func TestComputeSingleNode(t *testing.T) {
	g := buildGraph(t, 1, nil)

	m, err := Compute(g, Options{LargestComponentOnly: true})
	if err != nil {
		t.Fatalf("single-node graph must not error: %v", err)
	}

	if m.Nodes != 1 || m.Edges != 0 {
		t.Errorf("size = %d/%d, want 1/0", m.Nodes, m.Edges)
	}
	if m.ClusteringDefined {
		t.Error("clustering should be undefined for a single node")
	}
	if m.DensityDefined {
		t.Error("density should be undefined for a single node")
	}
	if m.AvgClustering != 0 {
		t.Errorf("AvgClustering = %v, want 0", m.AvgClustering)
	}
	if m.PathDefined {
		t.Error("path length should be undefined for a single node")
	}
}

func TestComputeEmptyGraph(t *testing.T) {
	g := simple.NewUndirectedGraph()

	m, err := Compute(g, Options{})
	if err != nil {
		t.Fatalf("empty graph must not error: %v", err)
	}
	if m.Nodes != 0 || m.ClusteringDefined || m.PathDefined {
		t.Errorf("empty graph bundle = %+v", m)
	}
}

func TestClusteringWithinBounds(t *testing.T) {
	graphs := map[string]*simple.UndirectedGraph{
		"triangle+tail": buildGraph(t, 4, [][2]int64{{0, 1}, {1, 2}, {0, 2}, {2, 3}}),
		"square":        buildGraph(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}}),
		"k4":            buildGraph(t, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}),
	}

	for name, g := range graphs {
		m, err := Compute(g, Options{LargestComponentOnly: true})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if m.AvgClustering < 0 || m.AvgClustering > 1 {
			t.Errorf("%s: AvgClustering %v outside [0,1]", name, m.AvgClustering)
		}
		if m.Transitivity < 0 || m.Transitivity > 1 {
			t.Errorf("%s: Transitivity %v outside [0,1]", name, m.Transitivity)
		}
		if m.Edges > 0 && m.PathDefined && m.AvgPathLength < 1 {
			t.Errorf("%s: AvgPathLength %v below 1", name, m.AvgPathLength)
		}
	}
}

func TestBFSDistances(t *testing.T) {
	g := buildGraph(t, 5, [][2]int64{{0, 1}, {1, 2}, {2, 3}})

	dist := bfsDistances(g, 0)
	want := map[int64]int{0: 0, 1: 1, 2: 2, 3: 3}
	for id, d := range want {
		if dist[id] != d {
			t.Errorf("dist[%d] = %d, want %d", id, dist[id], d)
		}
	}
	if _, ok := dist[4]; ok {
		t.Error("unreachable node should not appear in distances")
	}
}
