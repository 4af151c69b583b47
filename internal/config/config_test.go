package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Faces.Dataset != "generated.photos" {
		t.Errorf("dataset = %q; want generated.photos", cfg.Faces.Dataset)
	}
	if cfg.Faces.Stride != 5 {
		t.Errorf("stride = %d; want 5", cfg.Faces.Stride)
	}
	if cfg.Faces.Size != 256 {
		t.Errorf("image size = %d; want 256", cfg.Faces.Size)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d; want 8080", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FACES_DIR", "/tmp/faces")
	t.Setenv("FACES_STRIDE", "3")
	t.Setenv("FACES_IMAGE_SIZE", "128")

	cfg := Load()

	if cfg.Faces.Dir != "/tmp/faces" {
		t.Errorf("dir = %q; want /tmp/faces", cfg.Faces.Dir)
	}
	if cfg.Faces.Stride != 3 {
		t.Errorf("stride = %d; want 3", cfg.Faces.Stride)
	}
	if cfg.Faces.Size != 128 {
		t.Errorf("image size = %d; want 128", cfg.Faces.Size)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("FACES_STRIDE", "not-a-number")

	cfg := Load()
	if cfg.Faces.Stride != 5 {
		t.Errorf("stride = %d; want default 5", cfg.Faces.Stride)
	}
}

func TestUnknownDatasetFallsBackToGeneric(t *testing.T) {
	t.Setenv("FACES_DATASET", "does-not-exist")

	cfg := Load()
	conv := cfg.Conventions()
	if conv.IDDigits != 7 {
		t.Errorf("id digits = %d; want 7", conv.IDDigits)
	}
	if conv.MetadataDirSuffix != "_metadata" {
		t.Errorf("metadata dir suffix = %q; want _metadata", conv.MetadataDirSuffix)
	}
}

func TestConventions(t *testing.T) {
	cfg := Load()
	conv := cfg.Conventions()

	if conv.MetadataExt != ".json" {
		t.Errorf("metadata ext = %q; want .json", conv.MetadataExt)
	}
	if len(conv.ImageExts) == 0 {
		t.Error("expected at least one image extension")
	}
}
