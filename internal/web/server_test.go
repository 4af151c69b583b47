package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/eigenfaces/internal/catalog"
	"github.com/kozaktomas/eigenfaces/internal/cluster"
	"github.com/kozaktomas/eigenfaces/internal/config"
)

func testServer(t *testing.T, results *Results) *Server {
	t.Helper()
	cfg := config.Load()
	cfg.Faces.OutDir = t.TempDir()
	return NewServer(cfg, results)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	s := testServer(t, &Results{})

	rec := doGet(t, s, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q; want ok", body["status"])
	}
}

func TestCatalogEndpoint(t *testing.T) {
	s := testServer(t, &Results{
		Catalog: catalog.Catalog{
			{FaceID: "0000001", FileName: "a_0000001_b.jpg"},
			{FaceID: "0000002", FileName: "a_0000002_b.jpg"},
		},
	})

	rec := doGet(t, s, "/api/v1/catalog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Count   int             `json:"count"`
		Entries catalog.Catalog `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count != 2 || len(body.Entries) != 2 {
		t.Errorf("count = %d, entries = %d; want 2 and 2", body.Count, len(body.Entries))
	}
}

func TestProjectionEndpoint(t *testing.T) {
	s := testServer(t, &Results{
		Catalog: catalog.Catalog{
			{FaceID: "0000001"},
			{FaceID: "0000002"},
		},
		Projection: [][]float64{{1, 2}, {3, 4}},
		Clusters:   &cluster.Result{K: 2, Labels: []int{0, 1}, Sizes: []int{1, 1}},
	})

	rec := doGet(t, s, "/api/v1/projection")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var points []projectionPoint
	if err := json.Unmarshal(rec.Body.Bytes(), &points); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points; want 2", len(points))
	}
	if points[0].FaceID != "0000001" || points[0].X != 1 || points[0].Y != 2 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1].Cluster == nil || *points[1].Cluster != 1 {
		t.Errorf("unexpected cluster label on second point: %+v", points[1])
	}
}

func TestProjectionEndpointEmpty(t *testing.T) {
	s := testServer(t, &Results{})

	rec := doGet(t, s, "/api/v1/projection")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestClustersEndpointEmpty(t *testing.T) {
	s := testServer(t, &Results{})

	rec := doGet(t, s, "/api/v1/clusters")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestArtifactsEndpoint(t *testing.T) {
	s := testServer(t, &Results{})

	// Drop a fake artifact into the output directory.
	out := s.config.Faces.OutDir
	if err := os.WriteFile(filepath.Join(out, "eigenfaces.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := doGet(t, s, "/api/v1/artifacts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Count     int      `json:"count"`
		Artifacts []string `json:"artifacts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count != 1 || len(body.Artifacts) != 1 || body.Artifacts[0] != "eigenfaces.png" {
		t.Errorf("unexpected artifact listing: %+v", body)
	}
}
