// Package media probes image files for the metadata image blocks carry.
package media

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register decoders for the formats image blocks commonly reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a probed image.
type Info struct {
	Format string
	Width  int
	Height int
}

// Prober reads just enough of an image to report its format and dimensions.
type Prober struct{}

// Probe decodes the image header from r.
func (Prober) Probe(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("probe image: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ProbeFile probes an image on disk.
func (p Prober) ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()
	return p.Probe(f)
}
