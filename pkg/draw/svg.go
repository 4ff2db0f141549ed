package draw

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"

	"gamernet/pkg/bipartite"
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RenderSVG draws the projection onto an SVG canvas. Heavier co-participation
// edges get thicker strokes, and each node circle carries its entity name as
// a hover title. Nodes and edges are emitted in id order so the output is
// byte-stable for a given layout.
func RenderSVG(p *bipartite.Projection, positions map[int64]Position, colors map[string]string, cfg *Config) []byte {
	cfg.fillDefaults()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", BackgroundColor)

	ids := sortedNodeIDs(p.Graph)

	for _, u := range ids {
		it := p.Graph.From(u)
		targets := make([]int64, 0)
		for it.Next() {
			if v := it.Node().ID(); u < v {
				targets = append(targets, v)
			}
		}
		slices.Sort(targets)
		for _, v := range targets {
			w, _ := p.Graph.Weight(u, v)
			pu, pv := positions[u], positions[v]
			fmt.Fprintf(&buf,
				`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="0.4"/>`+"\n",
				pu.X, pu.Y, pv.X, pv.Y, EdgeColor, strokeWidth(w))
		}
	}

	for _, id := range ids {
		pos := positions[id]
		name := p.Name(id)
		fill, ok := colors[name]
		if !ok {
			fill = defaultColor
		}
		fmt.Fprintf(&buf, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s"><title>%s</title></circle>`+"\n",
			pos.X, pos.Y, fill, xmlEscaper.Replace(name))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func strokeWidth(weight float64) float64 {
	return math.Min(1+weight/2, 5)
}

