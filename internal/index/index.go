// Package index provides nearest-neighbor search over PCA projections.
package index

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/coder/hnsw"
	"gonum.org/v1/gonum/mat"
)

// maxNeighbors is the HNSW graph connectivity parameter.
const maxNeighbors = 16

// ProjectionIndex wraps an HNSW graph over per-face projection
// coordinates, keyed by face id.
type ProjectionIndex struct {
	graph *hnsw.Graph[string]
	dim   int
	count int
	mu    sync.RWMutex
}

// Neighbor is one nearest-neighbor search hit.
type Neighbor struct {
	FaceID   string  `json:"face_id"`
	Distance float64 `json:"distance"` // euclidean distance in projection space
}

// Build creates an index from a projection matrix with one row per id.
func Build(ids []string, proj *mat.Dense) (*ProjectionIndex, error) {
	n, d := proj.Dims()
	if n != len(ids) {
		return nil, fmt.Errorf("id count %d does not match projection rows %d", len(ids), n)
	}
	if n == 0 {
		return nil, errors.New("cannot build index from empty projection")
	}

	g := hnsw.NewGraph[string]()
	g.M = maxNeighbors
	g.Ml = 1.0 / float64(maxNeighbors) // standard HNSW level formula
	g.Distance = hnsw.EuclideanDistance

	for i, id := range ids {
		g.Add(hnsw.MakeNode(id, toFloat32(proj.RawRowView(i))))
	}

	return &ProjectionIndex{graph: g, dim: d, count: n}, nil
}

// Len returns the number of indexed faces.
func (p *ProjectionIndex) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.count
}

// Search finds the k nearest faces to the query coordinates.
func (p *ProjectionIndex) Search(query []float64, k int) ([]Neighbor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(query) != p.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), p.dim)
	}
	if k < 1 {
		return nil, fmt.Errorf("invalid neighbor count %d", k)
	}

	q := toFloat32(query)
	nodes := p.graph.Search(q, k)

	neighbors := make([]Neighbor, len(nodes))
	for i, n := range nodes {
		neighbors[i] = Neighbor{
			FaceID:   n.Key,
			Distance: euclidean(q, n.Value),
		}
	}
	return neighbors, nil
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

func euclidean(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
