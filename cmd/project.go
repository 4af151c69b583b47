package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/cluster"
	"github.com/kozaktomas/eigenfaces/internal/render"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Plot the faces in 2D PCA space",
	Long: `Project every face onto the first two principal components and
render the result as a scatter plot. With --clusters the points are
additionally grouped by k-means and colored per cluster.

Examples:
  # Plain 2D projection
  eigenfaces project

  # Projection colored by 5 k-means clusters
  eigenfaces project --clusters 5`,
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().Int("clusters", 0, "Color points by k-means with this cluster count (0 = off)")
}

func runProject(cmd *cobra.Command, args []string) error {
	k, _ := cmd.Flags().GetInt("clusters")

	cfg := loadConfig()
	_, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	points, _, err := projectFaces(stack, 2)
	if err != nil {
		return err
	}

	var labels []int
	if k > 0 {
		result, err := cluster.Assign(points, k, cluster.DefaultIterations)
		if err != nil {
			return err
		}
		labels = result.Labels
		fmt.Printf("Cluster sizes: %v\n", result.Sizes)
	}

	path := filepath.Join(cfg.Faces.OutDir, "projection.png")
	if err := render.Scatter(points, labels, "Faces in 2D PCA space", path); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}
