package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/cluster"
	"github.com/kozaktomas/eigenfaces/internal/pixels"
	"github.com/kozaktomas/eigenfaces/internal/render"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster the 2D PCA projection with k-means",
	Long: `Project every face onto the first two principal components, group
the projections with k-means and render a colored scatter plot plus a
montage of randomly sampled member faces per cluster.

The grouping is purely geometric; clusters need not correspond to pose,
identity or any other ground truth.

Examples:
  # Five clusters (notebook default)
  eigenfaces cluster

  # Different cluster count, reproducible sampling
  eigenfaces cluster --clusters 3 --seed 42

  # More sample faces per cluster montage
  eigenfaces cluster --samples 16`,
	RunE: runCluster,
}

func init() {
	rootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().Int("clusters", cluster.DefaultK, "Number of clusters")
	clusterCmd.Flags().Int("iterations", cluster.DefaultIterations, "Maximum k-means iterations")
	clusterCmd.Flags().Int("samples", 9, "Sample faces per cluster montage")
	clusterCmd.Flags().Int64("seed", 0, "Random seed for sampling (0 = time-based)")
}

func runCluster(cmd *cobra.Command, args []string) error {
	k, _ := cmd.Flags().GetInt("clusters")
	iterations, _ := cmd.Flags().GetInt("iterations")
	samples, _ := cmd.Flags().GetInt("samples")
	seed, _ := cmd.Flags().GetInt64("seed")

	cfg := loadConfig()
	_, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	points, _, err := projectFaces(stack, 2)
	if err != nil {
		return err
	}

	result, err := cluster.Assign(points, k, iterations)
	if err != nil {
		return err
	}

	fmt.Printf("Clustered %d faces into %d groups, sizes: %v\n", len(points), k, result.Sizes)

	scatterPath := filepath.Join(cfg.Faces.OutDir, "clusters.png")
	if err := render.Scatter(points, result.Labels, "K-means clusters in PCA space", scatterPath); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", scatterPath)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for label := 0; label < k; label++ {
		members := result.Members(label)
		if len(members) == 0 {
			continue
		}

		// Random sample without replacement, capped at the montage size.
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})
		if len(members) > samples {
			members = members[:samples]
		}

		grids := make([]pixels.Grid, len(members))
		for i, idx := range members {
			grids[i] = stack.Grid(idx)
		}

		opts := render.DefaultMontageOptions()
		opts.Columns = 3
		img, err := render.Montage(grids, opts)
		if err != nil {
			return fmt.Errorf("failed to render cluster %d montage: %w", label, err)
		}

		path := filepath.Join(cfg.Faces.OutDir, fmt.Sprintf("cluster_%d.png", label))
		if err := render.SavePNG(img, path); err != nil {
			return err
		}
		fmt.Printf("Saved %s (%d faces)\n", path, len(members))
	}

	return nil
}
