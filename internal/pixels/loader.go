package pixels

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Grayscale luma weights from ITU-R BT.601.
const (
	WeightR = 0.2989
	WeightG = 0.5870
	WeightB = 0.1140
)

// DefaultStride is the spatial subsampling factor applied after
// grayscale conversion.
const DefaultStride = 5

// DefaultImageSize is the source resolution the generated.photos
// dataset ships at. The loader treats it as a precondition and rejects
// images of any other size instead of letting a shape mismatch surface
// deeper in the pipeline.
const DefaultImageSize = 256

// Loader reads images as grayscale grids at a reduced resolution.
type Loader struct {
	Size   int // required decoded width and height
	Stride int // keep every Stride-th row and column
}

// NewLoader returns a loader for size×size source images downsampled
// by stride.
func NewLoader(size, stride int) *Loader {
	return &Loader{Size: size, Stride: stride}
}

// LoadFile decodes one image file, converts it to grayscale and
// downsamples it. It fails if the file cannot be decoded or the
// decoded image is not exactly Size×Size.
func (l *Loader) LoadFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Grid{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return l.convert(img, path)
}

// Load decodes all paths in order and stacks the resulting grids.
// The progress callback, if non-nil, is invoked after each image.
func (l *Loader) Load(paths []string, progress func(done, total int)) (*Stack, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images to load")
	}
	if l.Size < 1 || l.Stride < 1 {
		return nil, fmt.Errorf("invalid loader configuration: size %d, stride %d", l.Size, l.Stride)
	}

	rows, cols := l.outputShape()
	stack := NewStack(len(paths), rows, cols)

	for i, path := range paths {
		grid, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := stack.SetGrid(i, grid); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(i+1, len(paths))
		}
	}

	return stack, nil
}

// outputShape returns the post-downsampling grid dimensions.
func (l *Loader) outputShape() (rows, cols int) {
	n := (l.Size + l.Stride - 1) / l.Stride
	return n, n
}

// convert turns a decoded image into a downsampled grayscale grid.
func (l *Loader) convert(img image.Image, path string) (Grid, error) {
	bounds := img.Bounds()
	if bounds.Dx() != l.Size || bounds.Dy() != l.Size {
		return Grid{}, fmt.Errorf("image %s is %dx%d, expected %dx%d",
			path, bounds.Dx(), bounds.Dy(), l.Size, l.Size)
	}

	full := NewGrid(l.Size, l.Size)
	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; scale back to 0-255.
			brightness := WeightR*float64(r>>8) + WeightG*float64(g>>8) + WeightB*float64(b>>8)
			full.Set(y, x, brightness)
		}
	}

	return Downsample(full, l.Stride)
}
