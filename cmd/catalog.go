package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build and print the face image catalog",
	Long: `Scan the face image directory and print one row per image with the
parsed face id and the derived metadata file path.

Examples:
  # Print the catalog as a table
  eigenfaces catalog

  # Print the catalog as JSON
  eigenfaces catalog --json

  # Use a different image directory
  eigenfaces catalog --faces-dir /data/generated.photos`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().Bool("json", false, "Output as JSON")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig()
	cat, err := catalog.Build(cfg.Faces.Dir, cfg.Conventions())
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	}

	if len(cat) == 0 {
		fmt.Printf("No face images found in %s\n", cfg.Faces.Dir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACE ID\tFILE\tMETADATA")
	for _, e := range cat {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.FaceID, e.FileName, e.MetadataPath)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d images\n", len(cat))
	return nil
}
