package web

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (s *Server) setupRoutes() {
	s.router.Get("/api/v1/health", healthCheck)
	s.router.Get("/api/v1/catalog", s.handleCatalog)
	s.router.Get("/api/v1/projection", s.handleProjection)
	s.router.Get("/api/v1/clusters", s.handleClusters)
	s.router.Get("/api/v1/artifacts", s.handleArtifacts)

	// Rendered PNGs straight from the output directory.
	fileServer := http.StripPrefix("/artifacts/", http.FileServer(http.Dir(s.config.Faces.OutDir)))
	s.router.Get("/artifacts/*", fileServer.ServeHTTP)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// healthCheck handles the health check endpoint.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"count":   len(s.results.Catalog),
		"entries": s.results.Catalog,
	})
}

// projectionPoint is one face in 2D PCA space, with its cluster label
// when clustering ran.
type projectionPoint struct {
	FaceID  string  `json:"face_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Cluster *int    `json:"cluster,omitempty"`
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	if len(s.results.Projection) == 0 {
		respondError(w, http.StatusNotFound, "no projection computed")
		return
	}

	points := make([]projectionPoint, len(s.results.Projection))
	for i, coords := range s.results.Projection {
		points[i] = projectionPoint{
			FaceID: s.results.Catalog[i].FaceID,
			X:      coords[0],
			Y:      coords[1],
		}
		if s.results.Clusters != nil {
			label := s.results.Clusters.Labels[i]
			points[i].Cluster = &label
		}
	}
	respondJSON(w, http.StatusOK, points)
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	if s.results.Clusters == nil {
		respondError(w, http.StatusNotFound, "no clustering computed")
		return
	}
	respondJSON(w, http.StatusOK, s.results.Clusters)
}

func (s *Server) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	var files []string
	root := s.config.Faces.OutDir
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".png") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		respondError(w, http.StatusInternalServerError, "failed to list artifacts")
		return
	}

	sort.Strings(files)
	respondJSON(w, http.StatusOK, map[string]any{
		"count":     len(files),
		"artifacts": files,
	})
}
