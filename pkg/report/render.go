package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gamernet/pkg/bipartite"
)

// RunInfo carries the run context shown in the summary header.
type RunInfo struct {
	RunID      string
	Dataset    string
	Records    int
	Authors    int
	Subreddits int
	Side       string
	MinDegree  int
	TopHubs    []bipartite.NodeDegree
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(24).Faint(true)
	supportStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	refuteStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// Render produces the human-readable run summary. Undefined metrics are
// spelled out rather than printed as zeros.
func Render(info RunInfo, res *Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Small-world analysis of Reddit gaming communities"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "run %s\n\n", info.RunID)

	b.WriteString(sectionStyle.Render("Dataset"))
	b.WriteString("\n")
	row(&b, "path", info.Dataset)
	row(&b, "records", fmt.Sprintf("%d (min author degree %d)", info.Records, info.MinDegree))
	row(&b, "authors", fmt.Sprintf("%d", info.Authors))
	row(&b, "subreddits", fmt.Sprintf("%d", info.Subreddits))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Real network (%s projection)", info.Side)))
	b.WriteString("\n")
	row(&b, "nodes", fmt.Sprintf("%d", res.Real.Nodes))
	row(&b, "edges", fmt.Sprintf("%d", res.Real.Edges))
	row(&b, "components", fmt.Sprintf("%d", res.Real.Components))
	row(&b, "density", metric(res.Real.Density, res.Real.DensityDefined))
	row(&b, "avg clustering", metric(res.Real.AvgClustering, res.Real.ClusteringDefined))
	row(&b, "transitivity", metric(res.Real.Transitivity, res.Real.TransitivityDefined))
	row(&b, "assortativity", metric(res.Real.Assortativity, res.Real.AssortativityDefined))
	pathValue := metric(res.Real.AvgPathLength, res.Real.PathDefined)
	if res.Real.PathRestricted {
		pathValue += fmt.Sprintf(" (largest component, %d of %d nodes)", res.Real.ComponentSize, res.Real.Nodes)
	}
	row(&b, "avg path length", pathValue)
	row(&b, "degree", fmt.Sprintf("min %d / mean %.2f / max %d", res.Real.Degree.Min, res.Real.Degree.Mean, res.Real.Degree.Max))
	if len(info.TopHubs) > 0 {
		hubs := make([]string, 0, len(info.TopHubs))
		for _, h := range info.TopHubs {
			hubs = append(hubs, fmt.Sprintf("%s(%d)", h.Name, h.Degree))
		}
		row(&b, "top hubs", strings.Join(hubs, " "))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Random baselines"))
	b.WriteString("\n")
	row(&b, "model", string(res.Model))
	row(&b, "replicates", fmt.Sprintf("%d", res.Baseline.Replicates))
	row(&b, "seed", fmt.Sprintf("%d", res.Seed))
	row(&b, "density", spread(res.Baseline.MeanDensity, res.Baseline.StdDensity, res.Baseline.DensityDefined))
	row(&b, "avg clustering", spread(res.Baseline.MeanClustering, res.Baseline.StdClustering, res.Baseline.ClusteringDefined))
	row(&b, "assortativity", spread(res.Baseline.MeanAssortativity, res.Baseline.StdAssortativity, res.Baseline.AssortativityDefined))
	row(&b, "avg path length", spread(res.Baseline.MeanPathLength, res.Baseline.StdPathLength, res.Baseline.PathDefined))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Empirical p-values (share of replicates ≥ observed)"))
	b.WriteString("\n")
	row(&b, "density", pvalue(res.DensityP))
	row(&b, "avg clustering", pvalue(res.ClusteringP))
	row(&b, "assortativity", pvalue(res.AssortativityP))
	row(&b, "avg path length", pvalue(res.PathP))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Small-world coefficient"))
	b.WriteString("\n")
	row(&b, "C / C_rand", metric(res.ClusteringRatio, res.ClusteringRatioDefined))
	row(&b, "L / L_rand", metric(res.PathRatio, res.PathRatioDefined))
	row(&b, "sigma", metric(res.Sigma, res.SigmaDefined))

	verdict := "inconclusive: sigma undefined for this network"
	style := refuteStyle
	if res.SigmaDefined {
		if res.SmallWorld() {
			verdict = fmt.Sprintf("small-world structure supported (sigma %.4f > 1)", res.Sigma)
			style = supportStyle
		} else {
			verdict = fmt.Sprintf("small-world structure not supported (sigma %.4f ≤ 1)", res.Sigma)
		}
	}
	row(&b, "verdict", style.Render(verdict))

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render("  " + label))
	b.WriteString(value)
	b.WriteString("\n")
}

func metric(v float64, defined bool) string {
	if !defined {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", v)
}

func spread(mean, std float64, defined bool) string {
	if !defined {
		return "undefined"
	}
	return fmt.Sprintf("%.4f ± %.4f", mean, std)
}

func pvalue(p PValue) string {
	if !p.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", p.Value)
}
