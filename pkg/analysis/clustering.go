package analysis

import "slices"

// clusteringStats computes the average local clustering coefficient and the
// global transitivity in one pass over the adjacency sets.
//
// For each node u with degree k ≥ 2, the local coefficient is the number of
// edges among u's neighbors divided by k(k-1)/2. The average counts nodes
// with k < 2 as zero and divides by the total node count. Transitivity is
// the ratio of closed to connected triplets summed over all centers.
// Nodes are visited in id order so the floating-point sum is reproducible.
func clusteringStats(neighbors map[int64]map[int64]bool) (avg float64, defined bool, transitivity float64, transitivityDefined bool) {
	var sum, closed, triplets float64

	ids := make([]int64, 0, len(neighbors))
	for id := range neighbors {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		nbrs := neighbors[id]
		k := len(nbrs)
		if k < 2 {
			continue
		}
		defined = true

		tri := trianglesThrough(neighbors, nbrs)
		possible := float64(k*(k-1)) / 2

		sum += float64(tri) / possible
		closed += float64(tri)
		triplets += possible
	}

	if n := len(neighbors); n > 0 {
		avg = sum / float64(n)
	}
	if triplets > 0 {
		transitivity = closed / triplets
		transitivityDefined = true
	}
	return avg, defined, transitivity, transitivityDefined
}

// trianglesThrough counts edges among a node's neighbors, i.e. the number
// of triangles the node participates in.
func trianglesThrough(neighbors map[int64]map[int64]bool, nbrs map[int64]bool) int {
	ids := make([]int64, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}

	count := 0
	for i := 0; i < len(ids); i++ {
		vSet := neighbors[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			if vSet[ids[j]] {
				count++
			}
		}
	}
	return count
}
