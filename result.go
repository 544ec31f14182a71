package tidyclust

import (
	"errors"
	"fmt"
)

// Method identifies the clustering procedure that produced a result.
type Method string

const (
	MethodKMeans Method = "kmeans"
)

// ErrShapeMismatch is returned when the components of a clustering result
// disagree on their dimensions, or when the assignments do not line up with
// the observations being augmented. Errors wrap this sentinel, so callers
// can test for it with errors.Is.
var ErrShapeMismatch = errors.New("tidyclust: shape mismatch")

// KMeansResult is the output of an external k-means run. tidyclust never
// mutates it; all derived tables copy what they need.
type KMeansResult struct {
	// Assignments maps each observation index to its cluster ID (0-indexed).
	Assignments []int

	// Centers holds one coordinate vector per cluster, in cluster-ID order.
	// All centers must have the same dimensionality.
	Centers [][]float64

	// Sizes is the number of observations assigned to each cluster, in
	// cluster-ID order.
	Sizes []int

	// WithinSS is the within-cluster sum of squares for each cluster, in
	// cluster-ID order.
	WithinSS []float64

	// TotalSS is the total sum of squares of the input data.
	TotalSS float64

	// TotalWithinSS is the sum of WithinSS over all clusters.
	TotalWithinSS float64

	// BetweenSS is TotalSS minus TotalWithinSS.
	BetweenSS float64

	// Iterations is the number of iterations the algorithm ran.
	Iterations int
}

// Method reports the clustering-method variant of the result.
func (r *KMeansResult) Method() Method { return MethodKMeans }

// NumClusters returns the number of clusters in the result.
func (r *KMeansResult) NumClusters() int { return len(r.Centers) }

// NumObservations returns the number of observations the result covers.
func (r *KMeansResult) NumObservations() int { return len(r.Assignments) }

// validate checks the internal shape invariants of r and returns an error
// wrapping ErrShapeMismatch if any is violated.
func (r *KMeansResult) validate() error {
	k := len(r.Centers)
	if len(r.Sizes) != k {
		return fmt.Errorf("%w: %d centers but %d sizes", ErrShapeMismatch, k, len(r.Sizes))
	}
	if len(r.WithinSS) != k {
		return fmt.Errorf("%w: %d centers but %d within-cluster sums of squares", ErrShapeMismatch, k, len(r.WithinSS))
	}
	if k > 0 {
		dims := len(r.Centers[0])
		for c, center := range r.Centers {
			if len(center) != dims {
				return fmt.Errorf("%w: center %d has %d coordinates, center 0 has %d", ErrShapeMismatch, c, len(center), dims)
			}
		}
	}
	total := 0
	for _, s := range r.Sizes {
		total += s
	}
	if total != len(r.Assignments) {
		return fmt.Errorf("%w: cluster sizes sum to %d but there are %d assignments", ErrShapeMismatch, total, len(r.Assignments))
	}
	for i, a := range r.Assignments {
		if a < 0 || a >= k {
			return fmt.Errorf("%w: assignment %d for observation %d out of range [0, %d)", ErrShapeMismatch, a, i, k)
		}
	}
	return nil
}
