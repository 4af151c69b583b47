// Package cluster groups PCA projections with k-means.
package cluster

import (
	"fmt"

	"github.com/mpraski/clusters"
)

// DefaultK is the cluster count used when nothing else is requested.
const DefaultK = 5

// DefaultIterations bounds the Lloyd's algorithm refinement loop.
const DefaultIterations = 1000

// Result holds one k-means partitioning of the input points.
type Result struct {
	K      int   `json:"k"`
	Labels []int `json:"labels"` // 0-based cluster label per input point
	Sizes  []int `json:"sizes"`  // points per cluster, indexed by label
}

// Assign partitions points into k groups by iterative centroid
// refinement with euclidean distance. Labels are a purely geometric
// grouping; their numbering carries no meaning across runs.
func Assign(points [][]float64, k, iterations int) (*Result, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to cluster")
	}
	if k < 2 || k > len(points) {
		return nil, fmt.Errorf("cluster count %d out of range [2, %d]", k, len(points))
	}
	if iterations < 1 {
		iterations = DefaultIterations
	}

	c, err := clusters.KMeans(iterations, k, clusters.EuclideanDistance)
	if err != nil {
		return nil, fmt.Errorf("failed to create k-means clusterer: %w", err)
	}
	if err := c.Learn(points); err != nil {
		return nil, fmt.Errorf("failed to cluster points: %w", err)
	}

	// The clusterer numbers clusters from 1; shift to 0-based labels.
	labels := make([]int, len(points))
	sizes := make([]int, k)
	for i, guess := range c.Guesses() {
		labels[i] = guess - 1
		sizes[guess-1]++
	}

	return &Result{K: k, Labels: labels, Sizes: sizes}, nil
}

// Members returns the indexes of all points assigned to label.
func (r *Result) Members(label int) []int {
	var members []int
	for i, l := range r.Labels {
		if l == label {
			members = append(members, i)
		}
	}
	return members
}
