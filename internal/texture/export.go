package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Format is an image file format supported by Save.
type Format string

// Supported formats.
const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatTGA  Format = "tga"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "webp":
		return FormatWebP, nil
	case "png":
		return FormatPNG, nil
	case "tga":
		return FormatTGA, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case FormatTGA:
		if err := EncodeTGA(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// Save writes img to path, choosing the encoder from the extension and creating
// parent directories as needed.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return err
	}
	return f.Close()
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling so
// the checker edges stay sharp in previews.
func Upscale(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
