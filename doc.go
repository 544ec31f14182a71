// Package tidyclust converts k-means clustering results into rectangular
// tables: one row per cluster, one row per observation, or one row per run.
//
// The clustering itself happens elsewhere. tidyclust consumes an opaque
// [KMeansResult] (assignments, centers, sizes, sum-of-squares statistics)
// together with the original observations, and derives three independent
// read-only views from it. Each view is created fresh on every call and
// shares no memory with its inputs.
//
// Basic usage:
//
//	clusters, err := tidyclust.Tidy(result)
//	// clusters[c].Center, clusters[c].Size, clusters[c].WithinSS
//	points, err := tidyclust.Augment(result, observations)
//	// points[i].Values is row i of observations, points[i].Cluster its assignment
//	summary := tidyclust.Glance(result)
//	// summary.TotalWithinSS, summary.BetweenSS, summary.Iterations
//
// # Batch helpers
//
// When the same data is clustered repeatedly (for example k = 1..9 while
// searching for an elbow), each result tidies independently. TidyAll,
// AugmentAll and GlanceAll process a slice of results, optionally across
// multiple goroutines, with output index i always corresponding to input
// index i:
//
//	tables, err := tidyclust.TidyAll(results, runtime.NumCPU())
//	curve := tidyclust.TotalWithinSSCurve(results) // one value per k, for scree plots
package tidyclust
