package tidyclust

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// twoClusterResult returns a consistent result with 2 clusters over 5
// observations.
func twoClusterResult() *KMeansResult {
	return &KMeansResult{
		Assignments:   []int{0, 0, 1, 1, 0},
		Centers:       [][]float64{{1, 1}, {10, 10}},
		Sizes:         []int{3, 2},
		WithinSS:      []float64{2.0, 1.5},
		TotalSS:       200.0,
		TotalWithinSS: 3.5,
		BetweenSS:     196.5,
		Iterations:    2,
	}
}

func twoClusterObservations() [][]float64 {
	return [][]float64{
		{1.1, 0.9},
		{0.8, 1.2},
		{10.5, 9.5},
		{9.5, 10.5},
		{1.0, 1.0},
	}
}

func TestAugment_PreservesRowOrderAndCount(t *testing.T) {
	result := twoClusterResult()
	observations := twoClusterObservations()

	table, err := Augment(result, observations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != len(observations) {
		t.Fatalf("expected %d rows, got %d", len(observations), len(table))
	}
	for i, row := range table {
		for j, v := range row.Values {
			if v != observations[i][j] {
				t.Errorf("row %d column %d: expected %f, got %f", i, j, observations[i][j], v)
			}
		}
		if row.Cluster != result.Assignments[i] {
			t.Errorf("row %d: expected cluster %d, got %d", i, result.Assignments[i], row.Cluster)
		}
	}
}

func TestAugment_CountMismatch(t *testing.T) {
	result := twoClusterResult()
	observations := twoClusterObservations()[:4] // one short

	_, err := Augment(result, observations)
	if err == nil {
		t.Fatal("expected an error for 5 assignments over 4 observations")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestAugment_InconsistentResult(t *testing.T) {
	result := twoClusterResult()
	result.Sizes = result.Sizes[:1]

	_, err := Augment(result, twoClusterObservations())
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestAugment_RowsAreCopies(t *testing.T) {
	result := twoClusterResult()
	observations := twoClusterObservations()

	table, err := Augment(result, observations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table[0].Values[0] = 99.0
	if observations[0][0] != 1.1 {
		t.Errorf("mutating the table reached the input: got %f", observations[0][0])
	}
	observations[1][0] = -5.0
	if table[1].Values[0] != 0.8 {
		t.Errorf("mutating the input reached the table: got %f", table[1].Values[0])
	}
}

func TestAugmentMatrix(t *testing.T) {
	result := twoClusterResult()
	observations := twoClusterObservations()

	flat := make([]float64, 0, 10)
	for _, row := range observations {
		flat = append(flat, row...)
	}
	m := mat.NewDense(5, 2, flat)

	fromMatrix, err := AugmentMatrix(result, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromSlices, err := Augment(result, observations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fromMatrix) != len(fromSlices) {
		t.Fatalf("matrix and slice augment disagree on row count: %d vs %d", len(fromMatrix), len(fromSlices))
	}
	for i := range fromMatrix {
		if fromMatrix[i].Cluster != fromSlices[i].Cluster {
			t.Errorf("row %d: cluster %d vs %d", i, fromMatrix[i].Cluster, fromSlices[i].Cluster)
		}
		for j := range fromMatrix[i].Values {
			if fromMatrix[i].Values[j] != fromSlices[i].Values[j] {
				t.Errorf("row %d column %d: %f vs %f", i, j, fromMatrix[i].Values[j], fromSlices[i].Values[j])
			}
		}
	}
}

func TestAugmentMatrix_RowMismatch(t *testing.T) {
	result := twoClusterResult()
	m := mat.NewDense(4, 2, nil)

	_, err := AugmentMatrix(result, m)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}
