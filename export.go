package favicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/oxtoacart/bpool"
	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// ICOSizes are the frame sizes bundled into favicon.ico, smallest first.
// Operating systems pick whichever frame fits the context best.
var ICOSizes = []int{16, 32, 48, 64, 128, 256}

// Encoding goes through a pooled buffer so that an encode error never
// leaves a truncated file on disk.
var bufpool = bpool.NewBufferPool(4)

// resample scales a rendered frame onto a fresh canvas at its nominal
// size with a high-quality filter before it gets bundled.
func resample(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// WriteICO renders every requested size independently, resamples each frame,
// and writes them all into a single multi-frame ICO container at path.
func WriteICO(path string, sizes []int) error {
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		frames = append(frames, resample(GenerateGhostImage(size), size))
	}

	buf := bufpool.Get()
	defer bufpool.Put(buf)
	if err := ico.EncodeAll(buf, frames); err != nil {
		return fmt.Errorf("couldn't encode %s: %s", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WritePNG renders the ghost mask at the given size and writes it as a
// single PNG file at path.
func WritePNG(path string, size int) error {
	buf := bufpool.Get()
	defer bufpool.Put(buf)
	if err := GenerateGhostPNG(buf, size); err != nil {
		return fmt.Errorf("couldn't encode %s: %s", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ExportAll writes the whole favicon asset set under outDir and returns the
// paths written, in order. It stops at the first failure; there's no
// rollback, so the returned slice tells you how far it got.
func ExportAll(outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	written := make([]string, 0, 4)
	icoPath := filepath.Join(outDir, "favicon.ico")
	if err := WriteICO(icoPath, ICOSizes); err != nil {
		return written, err
	}
	written = append(written, icoPath)

	pngs := []struct {
		name string
		size int
	}{
		{"favicon-16x16.png", 16},
		{"favicon-32x32.png", 32},
		{"apple-touch-icon.png", 180},
	}
	for _, p := range pngs {
		path := filepath.Join(outDir, p.name)
		if err := WritePNG(path, p.size); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
