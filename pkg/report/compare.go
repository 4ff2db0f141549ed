// Package report compares the real network against its random baselines and
// renders the run summary.
package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"gamernet/pkg/analysis"
	"gamernet/pkg/randomnet"
)

// ErrConfigMismatch reports baselines generated against sizes that do not
// match the real graph. Comparing mismatched graphs is meaningless, so this
// is asserted rather than ignored.
var ErrConfigMismatch = errors.New("baseline targets do not match real graph")

// Aggregate summarizes metric bundles across baseline replicates. Replicates
// with an undefined metric are excluded from that metric's aggregate.
type Aggregate struct {
	Replicates int

	MeanClustering    float64
	StdClustering     float64
	ClusteringDefined bool

	MeanPathLength float64
	StdPathLength  float64
	PathDefined    bool

	MeanDensity    float64
	StdDensity     float64
	DensityDefined bool

	MeanAssortativity    float64
	StdAssortativity     float64
	AssortativityDefined bool
}

// PValue is an empirical tail probability: the share of baseline replicates
// at least as large as the observed value. Undefined when either side of the
// comparison is.
type PValue struct {
	Value   float64
	Defined bool
}

// Result is the outcome of the small-world comparison.
type Result struct {
	Real     *analysis.MetricBundle
	Baseline Aggregate
	Model    randomnet.Model
	Seed     uint64

	// ClusteringRatio is C/⟨C_rand⟩, PathRatio is L/⟨L_rand⟩ and Sigma is
	// their quotient; each carries a defined flag since single-node or
	// edgeless graphs leave them unanswerable.
	ClusteringRatio        float64
	ClusteringRatioDefined bool
	PathRatio              float64
	PathRatioDefined       bool
	Sigma                  float64
	SigmaDefined           bool

	// Empirical p-values of the observed metrics against the replicate
	// distributions.
	ClusteringP    PValue
	PathP          PValue
	DensityP       PValue
	AssortativityP PValue
}

// SmallWorld reports whether the comparison supports small-world structure.
// Values of sigma substantially greater than 1 do.
func (r *Result) SmallWorld() bool {
	return r.SigmaDefined && r.Sigma > 1
}

// Compare checks the size precondition and computes the small-world
// statistics from the real bundle and the baseline set.
func Compare(real *analysis.MetricBundle, set *randomnet.Set) (*Result, error) {
	if len(set.Baselines) == 0 {
		return nil, errors.New("baseline set is empty")
	}
	if set.Targets.Nodes != real.Nodes {
		return nil, fmt.Errorf("%w: generated for %d nodes, real graph has %d",
			ErrConfigMismatch, set.Targets.Nodes, real.Nodes)
	}
	if set.Targets.Edges != real.Edges {
		return nil, fmt.Errorf("%w: generated for %d edges, real graph has %d",
			ErrConfigMismatch, set.Targets.Edges, real.Edges)
	}

	agg, reps := aggregate(set)

	res := &Result{
		Real:     real,
		Baseline: agg,
		Model:    set.Model,
		Seed:     set.Seed,

		ClusteringP:    empiricalP(real.AvgClustering, real.ClusteringDefined, reps.clustering),
		PathP:          empiricalP(real.AvgPathLength, real.PathDefined, reps.pathLength),
		DensityP:       empiricalP(real.Density, real.DensityDefined, reps.density),
		AssortativityP: empiricalP(real.Assortativity, real.AssortativityDefined, reps.assortativity),
	}

	if real.ClusteringDefined && agg.ClusteringDefined && agg.MeanClustering > 0 {
		res.ClusteringRatio = real.AvgClustering / agg.MeanClustering
		res.ClusteringRatioDefined = true
	}
	if real.PathDefined && agg.PathDefined && agg.MeanPathLength > 0 {
		res.PathRatio = real.AvgPathLength / agg.MeanPathLength
		res.PathRatioDefined = true
	}
	if res.ClusteringRatioDefined && res.PathRatioDefined && res.PathRatio > 0 {
		res.Sigma = res.ClusteringRatio / res.PathRatio
		res.SigmaDefined = true
	}

	return res, nil
}

// samples holds the defined replicate values per metric, kept around for the
// empirical p-values.
type samples struct {
	clustering    []float64
	pathLength    []float64
	density       []float64
	assortativity []float64
}

func aggregate(set *randomnet.Set) (Aggregate, samples) {
	agg := Aggregate{Replicates: len(set.Baselines)}

	var s samples
	for _, b := range set.Baselines {
		if b.Metrics.ClusteringDefined {
			s.clustering = append(s.clustering, b.Metrics.AvgClustering)
		}
		if b.Metrics.PathDefined {
			s.pathLength = append(s.pathLength, b.Metrics.AvgPathLength)
		}
		if b.Metrics.DensityDefined {
			s.density = append(s.density, b.Metrics.Density)
		}
		if b.Metrics.AssortativityDefined {
			s.assortativity = append(s.assortativity, b.Metrics.Assortativity)
		}
	}

	agg.MeanClustering, agg.StdClustering, agg.ClusteringDefined = meanStd(s.clustering)
	agg.MeanPathLength, agg.StdPathLength, agg.PathDefined = meanStd(s.pathLength)
	agg.MeanDensity, agg.StdDensity, agg.DensityDefined = meanStd(s.density)
	agg.MeanAssortativity, agg.StdAssortativity, agg.AssortativityDefined = meanStd(s.assortativity)
	return agg, s
}

func meanStd(values []float64) (mean, std float64, defined bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std, true
}

// empiricalP is the probability of a replicate at least as extreme as the
// observed value, following the resampling convention
// p = |{rep : rep >= observed}| / |reps|.
func empiricalP(observed float64, observedDefined bool, reps []float64) PValue {
	if !observedDefined || len(reps) == 0 {
		return PValue{}
	}
	atLeast := 0
	for _, r := range reps {
		if r >= observed {
			atLeast++
		}
	}
	return PValue{Value: float64(atLeast) / float64(len(reps)), Defined: true}
}
