package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/kozaktomas/eigenfaces/internal/index"
)

var similarCmd = &cobra.Command{
	Use:   "similar [face-id]",
	Short: "Find faces close to a given face in PCA space",
	Long: `Project all faces into component space, build a nearest-neighbor
index over the projections and list the faces closest to the given
face id. Lower distance values indicate more similar faces.

Examples:
  # Find the 5 nearest faces
  eigenfaces similar 0000042

  # Search in a richer component space with more results
  eigenfaces similar 0000042 --components 32 --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().Int("components", 16, "Number of components for the search space")
	similarCmd.Flags().Int("limit", 5, "Maximum number of results")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	faceID := args[0]
	k, _ := cmd.Flags().GetInt("components")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := loadConfig()
	cat, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	queryRow := -1
	for i, e := range cat {
		if e.FaceID == faceID {
			queryRow = i
			break
		}
	}
	if queryRow == -1 {
		return fmt.Errorf("face id %s not found in catalog", faceID)
	}

	points, _, err := projectFaces(stack, k)
	if err != nil {
		return err
	}

	proj := mat.NewDense(len(points), k, nil)
	for i, p := range points {
		proj.SetRow(i, p)
	}

	idx, err := index.Build(cat.IDs(), proj)
	if err != nil {
		return fmt.Errorf("failed to build projection index: %w", err)
	}
	fmt.Printf("Indexed %d faces in %d-dimensional PCA space\n\n", idx.Len(), k)

	// Ask for one extra neighbor since the query face matches itself.
	neighbors, err := idx.Search(points[queryRow], limit+1)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACE ID\tDISTANCE\tFILE")
	shown := 0
	for _, n := range neighbors {
		if n.FaceID == faceID {
			continue
		}
		if shown >= limit {
			break
		}
		entry, _ := cat.FindByID(n.FaceID)
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", n.FaceID, n.Distance, entry.FileName)
		shown++
	}
	return w.Flush()
}
