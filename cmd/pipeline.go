package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/kozaktomas/eigenfaces/internal/catalog"
	"github.com/kozaktomas/eigenfaces/internal/config"
	"github.com/kozaktomas/eigenfaces/internal/pca"
	"github.com/kozaktomas/eigenfaces/internal/pixels"
)

// loadConfig loads the environment configuration and applies the
// persistent flag overrides.
func loadConfig() *config.Config {
	cfg := config.Load()
	if facesDir != "" {
		cfg.Faces.Dir = facesDir
	}
	if outDir != "" {
		cfg.Faces.OutDir = outDir
	}
	return cfg
}

// loadFaces builds the catalog and loads every cataloged image as a
// downsampled grayscale grid, with a progress bar.
func loadFaces(cfg *config.Config) (catalog.Catalog, *pixels.Stack, error) {
	cat, err := catalog.Build(cfg.Faces.Dir, cfg.Conventions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	if len(cat) == 0 {
		return nil, nil, fmt.Errorf("no face images found in %s", cfg.Faces.Dir)
	}

	fmt.Printf("Found %d face images in %s\n", len(cat), cfg.Faces.Dir)

	bar := progressbar.NewOptions(len(cat),
		progressbar.OptionSetDescription("Loading faces"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("faces"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	loader := pixels.NewLoader(cfg.Faces.Size, cfg.Faces.Stride)
	stack, err := loader.Load(cat.Paths(), func(done, total int) {
		_ = bar.Add(1)
	})
	fmt.Println()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load images: %w", err)
	}

	return cat, stack, nil
}

// fitModel flattens the stack and fits PCA with k components,
// reporting the valid component range on bad input.
func fitModel(stack *pixels.Stack, k int) (*pca.Model, *mat.Dense, error) {
	features := stack.Flatten()
	n, d := features.Dims()
	maxK := n
	if d < maxK {
		maxK = d
	}
	if k < 1 || k > maxK {
		return nil, nil, fmt.Errorf("component count %d out of range [1, %d] for %d images of %d pixels", k, maxK, n, d)
	}

	model, err := pca.Fit(features, k)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fit PCA: %w", err)
	}
	return model, features, nil
}

// projectFaces fits PCA and returns per-face coordinates as plain
// slices, one per catalog entry.
func projectFaces(stack *pixels.Stack, k int) ([][]float64, *pca.Model, error) {
	model, features, err := fitModel(stack, k)
	if err != nil {
		return nil, nil, err
	}

	proj, err := model.Transform(features)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to project faces: %w", err)
	}

	n, _ := proj.Dims()
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := proj.RawRowView(i)
		points[i] = append([]float64(nil), row...)
	}
	return points, model, nil
}
