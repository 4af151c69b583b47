package cluster

import "testing"

// blobs returns two tight, well-separated point groups.
func blobs() [][]float64 {
	return [][]float64{
		{0.0, 0.1},
		{0.1, 0.0},
		{0.1, 0.1},
		{0.0, 0.0},
		{10.0, 10.1},
		{10.1, 10.0},
		{10.1, 10.1},
		{10.0, 10.0},
	}
}

func TestAssignSeparatesBlobs(t *testing.T) {
	points := blobs()

	result, err := Assign(points, 2, DefaultIterations)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	if len(result.Labels) != len(points) {
		t.Fatalf("label count = %d; want %d", len(result.Labels), len(points))
	}

	// All points in a blob must share a label, and the blobs must not
	// share one. Label numbering itself is arbitrary.
	first := result.Labels[0]
	for i := 1; i < 4; i++ {
		if result.Labels[i] != first {
			t.Errorf("point %d not in same cluster as point 0", i)
		}
	}
	second := result.Labels[4]
	if second == first {
		t.Error("blobs assigned to the same cluster")
	}
	for i := 5; i < 8; i++ {
		if result.Labels[i] != second {
			t.Errorf("point %d not in same cluster as point 4", i)
		}
	}
}

func TestAssignSizes(t *testing.T) {
	result, err := Assign(blobs(), 2, DefaultIterations)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	total := 0
	for _, s := range result.Sizes {
		total += s
	}
	if total != 8 {
		t.Errorf("sizes sum = %d; want 8", total)
	}
}

func TestAssignValidation(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
		k      int
	}{
		{"empty input", nil, 2},
		{"k below two", blobs(), 1},
		{"k exceeds points", blobs(), 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Assign(tc.points, tc.k, DefaultIterations); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMembers(t *testing.T) {
	result := &Result{
		K:      2,
		Labels: []int{0, 1, 0, 1, 0},
		Sizes:  []int{3, 2},
	}

	members := result.Members(0)
	want := []int{0, 2, 4}
	if len(members) != len(want) {
		t.Fatalf("member count = %d; want %d", len(members), len(want))
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("members[%d] = %d; want %d", i, members[i], want[i])
		}
	}
}
