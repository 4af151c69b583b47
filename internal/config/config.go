package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/eigenfaces/internal/catalog"
)

//go:embed datasets.yaml
var datasetsYAML []byte

type Config struct {
	Faces    FacesConfig
	Server   ServerConfig
	Datasets DatasetsConfig
}

type FacesConfig struct {
	Dir     string // directory with the face images
	OutDir  string // directory for rendered artifacts
	Dataset string // dataset preset name from datasets.yaml
	Stride  int    // downsampling stride
	Size    int    // expected source image size (width and height)
}

type ServerConfig struct {
	Host string
	Port int
}

type DatasetsConfig struct {
	Presets map[string]DatasetPreset `yaml:"datasets"`
}

// DatasetPreset describes the file layout conventions of a dataset.
type DatasetPreset struct {
	MetadataDirSuffix string   `yaml:"metadata_dir_suffix"`
	MetadataExt       string   `yaml:"metadata_ext"`
	ImageExts         []string `yaml:"image_exts"`
	IDDigits          int      `yaml:"id_digits"`
	ImageSize         int      `yaml:"image_size"`
	Stride            int      `yaml:"stride"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var datasets DatasetsConfig
	if err := yaml.Unmarshal(datasetsYAML, &datasets); err != nil {
		// This is an embedded file so this error should never happen in practice.
		panic("failed to unmarshal embedded datasets.yaml: " + err.Error())
	}

	dataset := envString("FACES_DATASET", "generated.photos")
	preset, ok := datasets.Presets[dataset]
	if !ok {
		preset = datasets.Presets["generic"]
	}

	return &Config{
		Faces: FacesConfig{
			Dir:     envString("FACES_DIR", "data/generated.photos"),
			OutDir:  envString("FACES_OUT", "out"),
			Dataset: dataset,
			Stride:  envInt("FACES_STRIDE", preset.Stride),
			Size:    envInt("FACES_IMAGE_SIZE", preset.ImageSize),
		},
		Server: ServerConfig{
			Host: envString("FACES_SERVER_HOST", "0.0.0.0"),
			Port: envInt("FACES_SERVER_PORT", 8080),
		},
		Datasets: datasets,
	}
}

// Preset returns the layout conventions for the configured dataset.
func (c *Config) Preset() DatasetPreset {
	if preset, ok := c.Datasets.Presets[c.Faces.Dataset]; ok {
		return preset
	}
	return c.Datasets.Presets["generic"]
}

// Conventions translates the configured preset into catalog conventions.
func (c *Config) Conventions() catalog.Conventions {
	preset := c.Preset()
	return catalog.Conventions{
		ImageExts:         preset.ImageExts,
		MetadataDirSuffix: preset.MetadataDirSuffix,
		MetadataExt:       preset.MetadataExt,
		IDDigits:          preset.IDDigits,
	}
}
