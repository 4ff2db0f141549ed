package analysis

import (
	"container/list"

	"gonum.org/v1/gonum/graph"
)

// bfsDistances finds hop distances from a source node to everything
// reachable from it using BFS.
func bfsDistances(g graph.Undirected, sourceID int64) map[int64]int {
	distances := make(map[int64]int)
	distances[sourceID] = 0

	queue := list.New()
	queue.PushBack(sourceID)

	for queue.Len() > 0 {
		currentID := queue.Remove(queue.Front()).(int64)
		currentDist := distances[currentID]

		it := g.From(currentID)
		for it.Next() {
			neighborID := it.Node().ID()
			if _, visited := distances[neighborID]; !visited {
				distances[neighborID] = currentDist + 1
				queue.PushBack(neighborID)
			}
		}
	}

	return distances
}

// averagePathLength computes the mean shortest-path length over all ordered
// pairs of the given nodes, which must form a single connected component.
// The smallest possible value is 1, reached by a complete graph.
func averagePathLength(g graph.Undirected, nodes []int64) float64 {
	n := len(nodes)
	if n < 2 {
		return 0
	}

	var total float64
	for _, src := range nodes {
		distances := bfsDistances(g, src)
		for _, id := range nodes {
			if id != src {
				total += float64(distances[id])
			}
		}
	}
	return total / float64(n*(n-1))
}
