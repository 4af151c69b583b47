package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/pixels"
	"github.com/kozaktomas/eigenfaces/internal/render"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Render the principal components as an eigenface grid",
	Long: `Fit PCA on the loaded faces and render the component vectors
reshaped back to image dimensions. The first components capture the
broadest brightness and pose variation; later ones encode finer detail.

Examples:
  # Render the top 16 eigenfaces
  eigenfaces components

  # Render more components
  eigenfaces components --components 25`,
	RunE: runComponents,
}

func init() {
	rootCmd.AddCommand(componentsCmd)

	componentsCmd.Flags().Int("components", 16, "Number of components to render")
}

func runComponents(cmd *cobra.Command, args []string) error {
	k, _ := cmd.Flags().GetInt("components")

	cfg := loadConfig()
	_, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	model, _, err := fitModel(stack, k)
	if err != nil {
		return err
	}

	rows, cols := stack.Shape()
	grids := make([]pixels.Grid, k)
	for i := 0; i < k; i++ {
		g, err := pixels.GridFromRow(model.Components.RawRowView(i), rows, cols)
		if err != nil {
			return err
		}
		grids[i] = g
	}

	img, err := render.Montage(grids, render.DefaultMontageOptions())
	if err != nil {
		return fmt.Errorf("failed to render eigenfaces: %w", err)
	}

	path := filepath.Join(cfg.Faces.OutDir, "eigenfaces.png")
	if err := render.SavePNG(img, path); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n\n", path)

	var total float64
	for _, v := range model.ExplainedVariance {
		total += v
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tVARIANCE\tSHARE")
	for i, v := range model.ExplainedVariance {
		share := 0.0
		if total > 0 {
			share = v / total * 100
		}
		fmt.Fprintf(w, "%d\t%.2f\t%.1f%%\n", i+1, v, share)
	}
	return w.Flush()
}
