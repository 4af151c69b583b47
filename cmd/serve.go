package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/eigenfaces/internal/cluster"
	"github.com/kozaktomas/eigenfaces/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Run the PCA pipeline once and serve the results over HTTP: the
catalog, the 2D projection with cluster labels and the rendered PNG
artifacts from the output directory.

Examples:
  # Serve on the default port 8080
  eigenfaces serve

  # Different port, no clustering
  eigenfaces serve --port 9090 --clusters 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides FACES_SERVER_PORT)")
	serveCmd.Flags().Int("clusters", cluster.DefaultK, "Cluster count for the projection endpoint (0 = off)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	k, _ := cmd.Flags().GetInt("clusters")

	cfg := loadConfig()
	if port > 0 {
		cfg.Server.Port = port
	}

	cat, stack, err := loadFaces(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Projecting faces into 2D PCA space...")
	points, _, err := projectFaces(stack, 2)
	if err != nil {
		return err
	}

	results := &web.Results{
		Catalog:    cat,
		Projection: points,
	}

	if k > 0 {
		result, err := cluster.Assign(points, k, cluster.DefaultIterations)
		if err != nil {
			return err
		}
		results.Clusters = result
		fmt.Printf("Cluster sizes: %v\n", result.Sizes)
	}

	server := web.NewServer(cfg, results)

	// Shut down cleanly on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
