package analysis

// degreeAssortativity computes the Pearson correlation of degrees across
// edge endpoints. Each undirected edge contributes both orientations, so the
// two endpoint samples are symmetric. All accumulated terms are integers, so
// the result does not depend on visit order.
func degreeAssortativity(neighbors map[int64]map[int64]bool) (float64, bool) {
	var n, sx, sxx, sxy float64

	for _, nbrs := range neighbors {
		du := float64(len(nbrs))
		for v := range nbrs {
			dv := float64(len(neighbors[v]))
			n++
			sx += du
			sxx += du * du
			sxy += du * dv
		}
	}

	if n == 0 {
		return 0, false
	}

	// By symmetry the x and y endpoint samples share mean and variance.
	variance := n*sxx - sx*sx
	if variance <= 0 {
		return 0, false
	}
	return (n*sxy - sx*sx) / variance, true
}
