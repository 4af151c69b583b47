package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	facesDir string
	outDir   string
)

var rootCmd = &cobra.Command{
	Use:   "eigenfaces",
	Short: "A CLI tool for exploring face images with PCA",
	Long: `Eigenfaces loads a directory of face images, reduces them with
principal component analysis and renders the results: reconstructions
at increasing component counts, eigenface grids, synthetic faces,
2D projections and k-means clusters.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&facesDir, "faces-dir", "", "Directory with face images (overrides FACES_DIR)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Directory for rendered artifacts (overrides FACES_OUT)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
