package index

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func buildTestIndex(t *testing.T) *ProjectionIndex {
	t.Helper()
	ids := []string{"0000001", "0000002", "0000003", "0000004"}
	proj := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		10, 10,
		11, 10,
	})

	idx, err := Build(ids, proj)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return idx
}

func TestSearchFindsNearest(t *testing.T) {
	idx := buildTestIndex(t)

	neighbors, err := idx.Search([]float64{0.1, 0.1}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(neighbors) != 2 {
		t.Fatalf("got %d neighbors; want 2", len(neighbors))
	}
	if neighbors[0].FaceID != "0000001" {
		t.Errorf("nearest = %s; want 0000001", neighbors[0].FaceID)
	}
	if neighbors[1].FaceID != "0000002" {
		t.Errorf("second = %s; want 0000002", neighbors[1].FaceID)
	}
	if neighbors[0].Distance > neighbors[1].Distance {
		t.Error("neighbors not ordered by distance")
	}
}

func TestBuildValidation(t *testing.T) {
	if _, err := Build([]string{"a"}, mat.NewDense(2, 2, nil)); err == nil {
		t.Error("expected error for id/row count mismatch")
	}
	if _, err := Build(nil, &mat.Dense{}); err == nil {
		t.Error("expected error for empty projection")
	}
}

func TestSearchValidation(t *testing.T) {
	idx := buildTestIndex(t)

	if _, err := idx.Search([]float64{1, 2, 3}, 1); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if _, err := idx.Search([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for k=0")
	}
}

func TestLen(t *testing.T) {
	idx := buildTestIndex(t)
	if idx.Len() != 4 {
		t.Errorf("Len = %d; want 4", idx.Len())
	}
}
