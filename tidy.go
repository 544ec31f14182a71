package tidyclust

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ClusterRow describes one cluster: its ID, center coordinates, the number
// of observations assigned to it, and its within-cluster sum of squares.
type ClusterRow struct {
	Cluster  int
	Center   []float64
	Size     int
	WithinSS float64
}

// ClusterTable holds one ClusterRow per cluster, in cluster-ID order.
type ClusterTable []ClusterRow

// Tidy builds the per-cluster table for a k-means result: row c combines the
// center coordinates, size, and within-cluster sum of squares of cluster c.
// Center coordinates are copied, never aliased. Returns an error wrapping
// ErrShapeMismatch if the result's component lengths disagree.
func Tidy(r *KMeansResult) (ClusterTable, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	table := make(ClusterTable, len(r.Centers))
	for c, center := range r.Centers {
		row := ClusterRow{
			Cluster:  c,
			Center:   make([]float64, len(center)),
			Size:     r.Sizes[c],
			WithinSS: r.WithinSS[c],
		}
		copy(row.Center, center)
		table[c] = row
	}
	return table, nil
}

// Centers packs the table's center coordinates into a k×dims dense matrix,
// one row per cluster. Returns nil when the table is empty or the centers
// have no coordinates.
func (t ClusterTable) Centers() *mat.Dense {
	if len(t) == 0 {
		return nil
	}
	dims := len(t[0].Center)
	if dims == 0 {
		return nil
	}
	m := mat.NewDense(len(t), dims, nil)
	for c, row := range t {
		m.SetRow(c, row.Center)
	}
	return m
}

// TotalWithinSS sums the within-cluster sum of squares over all rows.
// For a table derived from a consistent result this equals the result's
// TotalWithinSS field.
func (t ClusterTable) TotalWithinSS() float64 {
	wss := make([]float64, len(t))
	for c, row := range t {
		wss[c] = row.WithinSS
	}
	return floats.Sum(wss)
}
