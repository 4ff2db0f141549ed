package bipartite

import (
	"testing"

	"gamernet/pkg/dataset"
)

func interactions(pairs ...[2]string) []dataset.Record {
	records := make([]dataset.Record, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, dataset.Record{Author: p[0], Subreddit: p[1]})
	}
	return records
}

func TestBuildCountsDistinctEntities(t *testing.T) {
	records := interactions(
		[2]string{"alice", "halo"},
		[2]string{"alice", "halo"}, // duplicate interaction
		[2]string{"alice", "pokemon"},
		[2]string{"bob", "halo"},
	)

	b := Build(records)
	if b.AuthorCount() != 2 {
		t.Errorf("AuthorCount = %d, want 2", b.AuthorCount())
	}
	if b.SubredditCount() != 2 {
		t.Errorf("SubredditCount = %d, want 2", b.SubredditCount())
	}
	// duplicate interaction deduplicated
	if b.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", b.EdgeCount())
	}
}

func TestProjectTriangle(t *testing.T) {
	// Three users posting in {A,B}, {B,C}, {A,C} must yield a 3-node,
	// 3-edge triangle on the subreddit side.
	records := interactions(
		[2]string{"u1", "A"}, [2]string{"u1", "B"},
		[2]string{"u2", "B"}, [2]string{"u2", "C"},
		[2]string{"u3", "A"}, [2]string{"u3", "C"},
	)

	p := Build(records).Project(SideSubreddit)
	if p.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", p.NodeCount())
	}
	if p.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", p.EdgeCount())
	}
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		w, ok := p.Weight(pair[0], pair[1])
		if !ok || w != 1 {
			t.Errorf("Weight(%s,%s) = %v,%v, want 1,true", pair[0], pair[1], w, ok)
		}
	}
}

func TestProjectAccumulatesWeight(t *testing.T) {
	// Two authors both posting in halo and Steam: weight 2, single edge.
	records := interactions(
		[2]string{"alice", "halo"}, [2]string{"alice", "Steam"},
		[2]string{"bob", "halo"}, [2]string{"bob", "Steam"},
	)

	p := Build(records).Project(SideSubreddit)
	if p.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", p.EdgeCount())
	}
	w, ok := p.Weight("halo", "Steam")
	if !ok || w != 2 {
		t.Errorf("Weight = %v,%v, want 2,true", w, ok)
	}
}

func TestProjectWeightsSymmetric(t *testing.T) {
	records := interactions(
		[2]string{"alice", "halo"}, [2]string{"alice", "Steam"},
		[2]string{"bob", "halo"}, [2]string{"bob", "Steam"},
		[2]string{"bob", "gaming"},
	)

	p := Build(records).Project(SideSubreddit)
	for _, pair := range [][2]string{{"halo", "Steam"}, {"Steam", "gaming"}, {"halo", "gaming"}} {
		ab, okAB := p.Weight(pair[0], pair[1])
		ba, okBA := p.Weight(pair[1], pair[0])
		if okAB != okBA || ab != ba {
			t.Errorf("asymmetric weight %s/%s: %v,%v vs %v,%v", pair[0], pair[1], ab, okAB, ba, okBA)
		}
	}
}

func TestProjectIsolatedNode(t *testing.T) {
	// lonelysub has a single author with no other subreddit: isolated
	// node in the projection, not an error.
	records := interactions(
		[2]string{"alice", "halo"}, [2]string{"alice", "Steam"},
		[2]string{"hermit", "lonelysub"},
	)

	p := Build(records).Project(SideSubreddit)
	if p.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3 (isolated node included)", p.NodeCount())
	}
	if p.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", p.EdgeCount())
	}
	if _, ok := p.Weight("lonelysub", "halo"); ok {
		t.Error("lonelysub should have no edges")
	}
}

func TestProjectAuthorSide(t *testing.T) {
	records := interactions(
		[2]string{"alice", "halo"},
		[2]string{"bob", "halo"},
		[2]string{"carol", "pokemon"},
	)

	p := Build(records).Project(SideAuthor)
	if p.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", p.NodeCount())
	}
	w, ok := p.Weight("alice", "bob")
	if !ok || w != 1 {
		t.Errorf("Weight(alice,bob) = %v,%v, want 1,true", w, ok)
	}
	if _, ok := p.Weight("alice", "carol"); ok {
		t.Error("alice and carol share no subreddit")
	}
}

func TestTopDegrees(t *testing.T) {
	records := interactions(
		[2]string{"u1", "hub"}, [2]string{"u1", "a"},
		[2]string{"u2", "hub"}, [2]string{"u2", "b"},
		[2]string{"u3", "hub"}, [2]string{"u3", "c"},
	)

	p := Build(records).Project(SideSubreddit)
	top := p.TopDegrees(2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].Name != "hub" || top[0].Degree != 3 {
		t.Errorf("top[0] = %+v, want hub/3", top[0])
	}
}
