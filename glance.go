package tidyclust

// Summary is the one-row whole-result view of a k-means run.
type Summary struct {
	// TotalSS is the total sum of squares of the input data.
	TotalSS float64

	// TotalWithinSS is the total within-cluster sum of squares. Lower is
	// tighter; plotted against k this is the usual elbow curve.
	TotalWithinSS float64

	// BetweenSS is the between-cluster sum of squares
	// (TotalSS - TotalWithinSS).
	BetweenSS float64

	// Iterations is how many iterations the algorithm ran.
	Iterations int
}

// Glance extracts the whole-result scalars from a k-means result. It reads
// no per-cluster or per-observation arrays, so it cannot fail.
func Glance(r *KMeansResult) Summary {
	return Summary{
		TotalSS:       r.TotalSS,
		TotalWithinSS: r.TotalWithinSS,
		BetweenSS:     r.BetweenSS,
		Iterations:    r.Iterations,
	}
}
