package tidyclust

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ObservationRow is one original observation plus the cluster it was
// assigned to.
type ObservationRow struct {
	Values  []float64
	Cluster int
}

// ObservationTable holds one ObservationRow per observation, in the same
// order as the input data.
type ObservationTable []ObservationRow

// Augment appends each observation's cluster assignment to a copy of its
// row. Row order and row count are preserved exactly. Returns an error
// wrapping ErrShapeMismatch if the number of assignments does not match the
// number of observations, or if the result itself is inconsistent.
func Augment(r *KMeansResult, observations [][]float64) (ObservationTable, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	if len(r.Assignments) != len(observations) {
		return nil, fmt.Errorf("%w: %d assignments but %d observations", ErrShapeMismatch, len(r.Assignments), len(observations))
	}

	table := make(ObservationTable, len(observations))
	for i, obs := range observations {
		row := ObservationRow{
			Values:  make([]float64, len(obs)),
			Cluster: r.Assignments[i],
		}
		copy(row.Values, obs)
		table[i] = row
	}
	return table, nil
}

// AugmentMatrix is Augment for observations held in a gonum matrix, one
// observation per row.
func AugmentMatrix(r *KMeansResult, observations mat.Matrix) (ObservationTable, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	rows, cols := observations.Dims()
	if len(r.Assignments) != rows {
		return nil, fmt.Errorf("%w: %d assignments but %d observation rows", ErrShapeMismatch, len(r.Assignments), rows)
	}

	table := make(ObservationTable, rows)
	for i := 0; i < rows; i++ {
		values := make([]float64, cols)
		for j := 0; j < cols; j++ {
			values[j] = observations.At(i, j)
		}
		table[i] = ObservationRow{Values: values, Cluster: r.Assignments[i]}
	}
	return table, nil
}
