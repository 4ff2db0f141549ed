// Package draw renders the projected network as an SVG drawing, with node
// colors carrying the subreddit categories.
package draw

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64
	Y float64
}

// Config configures layout and canvas parameters
type Config struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       uint64  // Seed for the initial placement
}

func (c *Config) fillDefaults() {
	if c.Width == 0 {
		c.Width = 1600
	}
	if c.Height == 0 {
		c.Height = 1600
	}
	if c.Iterations == 0 {
		c.Iterations = 50
	}
	if c.Padding == 0 {
		c.Padding = 50
	}
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g graph.Undirected) map[int64]Position
}

// ForceDirectedLayout implements force-directed graph layout. The initial
// placement is seeded and nodes are visited in id order, so the same graph
// and seed always produce the same drawing.
type ForceDirectedLayout struct {
	config *Config
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *Config) *ForceDirectedLayout {
	config.fillDefaults()
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g graph.Undirected) map[int64]Position {
	nodeIDs := sortedNodeIDs(g)
	if len(nodeIDs) == 0 {
		return make(map[int64]Position)
	}

	// Single node - center it
	if len(nodeIDs) == 1 {
		return map[int64]Position{
			nodeIDs[0]: {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}
	}

	rng := rand.New(rand.NewPCG(fdl.config.Seed, fdl.config.Seed))

	// Initialize random positions
	positions := make(map[int64]Position)
	for _, nodeID := range nodeIDs {
		positions[nodeID] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	adjacency := sortedAdjacency(g, nodeIDs)

	// Force-directed iterations
	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(nodeIDs))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[int64]Position)
		for _, nodeID := range nodeIDs {
			forces[nodeID] = Position{X: 0, Y: 0}
		}

		// Repulsion between all pairs
		for i, nodeID1 := range nodeIDs {
			for j := i + 1; j < len(nodeIDs); j++ {
				nodeID2 := nodeIDs[j]
				dx := positions[nodeID1].X - positions[nodeID2].X
				dy := positions[nodeID1].Y - positions[nodeID2].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[nodeID1] = Position{
					X: forces[nodeID1].X + fx,
					Y: forces[nodeID1].Y + fy,
				}
				forces[nodeID2] = Position{
					X: forces[nodeID2].X - fx,
					Y: forces[nodeID2].Y - fy,
				}
			}
		}

		// Attraction between connected nodes
		for _, nodeID1 := range nodeIDs {
			for _, nodeID2 := range adjacency[nodeID1] {
				dx := positions[nodeID1].X - positions[nodeID2].X
				dy := positions[nodeID1].Y - positions[nodeID2].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[nodeID1] = Position{
					X: forces[nodeID1].X - fx,
					Y: forces[nodeID1].Y - fy,
				}
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, nodeID := range nodeIDs {
			fx := forces[nodeID].X
			fy := forces[nodeID].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[nodeID] = Position{
					X: positions[nodeID].X + dx,
					Y: positions[nodeID].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding)
}

// CircularLayout arranges nodes in a circle
type CircularLayout struct {
	config *Config
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *Config) *CircularLayout {
	config.fillDefaults()
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle, in node id order
func (cl *CircularLayout) ComputeLayout(g graph.Undirected) map[int64]Position {
	nodeIDs := sortedNodeIDs(g)
	positions := make(map[int64]Position)

	if len(nodeIDs) == 0 {
		return positions
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(nodeIDs))

	for i, nodeID := range nodeIDs {
		angle := float64(i) * angleStep
		positions[nodeID] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions
}

// normalizePositions scales positions to fit within bounds
func normalizePositions(positions map[int64]Position, width, height, padding float64) map[int64]Position {
	if len(positions) == 0 {
		return positions
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[int64]Position)
	for nodeID, pos := range positions {
		normalized[nodeID] = Position{
			X: padding + ((pos.X-minX)/rangeX)*targetWidth,
			Y: padding + ((pos.Y-minY)/rangeY)*targetHeight,
		}
	}

	return normalized
}

func sortedNodeIDs(g graph.Undirected) []int64 {
	ids := make([]int64, 0)
	it := g.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)
	return ids
}

func sortedAdjacency(g graph.Undirected, nodeIDs []int64) map[int64][]int64 {
	adjacency := make(map[int64][]int64, len(nodeIDs))
	for _, id := range nodeIDs {
		neighbors := make([]int64, 0)
		it := g.From(id)
		for it.Next() {
			neighbors = append(neighbors, it.Node().ID())
		}
		slices.Sort(neighbors)
		adjacency[id] = neighbors
	}
	return adjacency
}
