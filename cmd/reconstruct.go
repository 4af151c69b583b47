package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/pca"
	"github.com/kozaktomas/eigenfaces/internal/pixels"
	"github.com/kozaktomas/eigenfaces/internal/render"
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Render PCA reconstructions at increasing component counts",
	Long: `Fit PCA on the loaded faces and render, for each requested component
count, a montage with the original faces on the top row and their
reconstructions below. More components always reconstruct at least as
accurately; the per-count squared error is printed for comparison.

Examples:
  # Default component counts (1, 5, 20, 50)
  eigenfaces reconstruct

  # Custom counts and more sample faces
  eigenfaces reconstruct --components 2,10,100 --samples 10`,
	RunE: runReconstruct,
}

func init() {
	rootCmd.AddCommand(reconstructCmd)

	reconstructCmd.Flags().IntSlice("components", []int{1, 5, 20, 50}, "Component counts to reconstruct with")
	reconstructCmd.Flags().Int("samples", 8, "Number of faces shown per montage")
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	counts, _ := cmd.Flags().GetIntSlice("components")
	samples, _ := cmd.Flags().GetInt("samples")

	if len(counts) == 0 {
		return fmt.Errorf("no component counts given")
	}
	sort.Ints(counts)

	cfg := loadConfig()
	_, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	if samples < 1 || samples > stack.Len() {
		samples = stack.Len()
	}

	// Fit once at the largest count; smaller counts are truncations of
	// the same model.
	model, features, err := fitModel(stack, counts[len(counts)-1])
	if err != nil {
		return err
	}

	rows, cols := stack.Shape()
	fmt.Println("Reconstruction error by component count:")

	for _, k := range counts {
		truncated, err := model.Truncate(k)
		if err != nil {
			return err
		}
		proj, err := truncated.Transform(features)
		if err != nil {
			return err
		}
		recon, err := truncated.InverseTransform(proj)
		if err != nil {
			return err
		}

		sse := pca.ReconstructionError(features, recon)
		fmt.Printf("  k=%-4d SSE=%.2f\n", k, sse)

		grids := make([]pixels.Grid, 0, 2*samples)
		for i := 0; i < samples; i++ {
			grids = append(grids, stack.Grid(i))
		}
		for i := 0; i < samples; i++ {
			g, err := pixels.GridFromRow(recon.RawRowView(i), rows, cols)
			if err != nil {
				return err
			}
			grids = append(grids, g)
		}

		opts := render.DefaultMontageOptions()
		opts.Columns = samples
		img, err := render.Montage(grids, opts)
		if err != nil {
			return fmt.Errorf("failed to render montage for k=%d: %w", k, err)
		}

		path := filepath.Join(cfg.Faces.OutDir, fmt.Sprintf("reconstruction_k%03d.png", k))
		if err := render.SavePNG(img, path); err != nil {
			return err
		}
		fmt.Printf("         saved %s\n", path)
	}

	return nil
}
