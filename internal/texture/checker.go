// Package texture generates the tube's checkerboard texture and reads and
// writes it in the common image formats.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/dqskin/pkg/math"
)

// ErrInvalidSize is returned for texture dimensions too small for the pattern.
var ErrInvalidSize = errors.New("invalid texture size")

// Config describes the checkerboard texture.
type Config struct {
	Width  int        `yaml:"width" toml:"width"`
	Height int        `yaml:"height" toml:"height"`
	Color1 [4]float32 `yaml:"color1" toml:"color1"`
	Color2 [4]float32 `yaml:"color2" toml:"color2"`
}

// DefaultConfig returns the 128x128 violet and green tube texture.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 128,
		Color1: [4]float32{0.2, 0.1, 0.7, 1},
		Color2: [4]float32{0.1, 0.5, 0.3, 1},
	}
}

// Validate checks that the pattern fits: 16 row bands and 4 column bands.
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 16 {
		return fmt.Errorf("%w: %dx%d, need at least 4x16", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}

// CheckerTexels returns the texture as float RGBA texels, row by row.
//
// Rows are split into 16 bands and columns into 4 bands shifted by an eighth of
// the width, so the pattern lines up across the texture coordinate mirror seam.
func CheckerTexels(c Config) ([]math.Vec4, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	color1 := math.Vec4FromArray(c.Color1)
	color2 := math.Vec4FromArray(c.Color2)

	rowBand := c.Height >> 4
	colBand := c.Width >> 2
	colShift := c.Width >> 3

	texels := make([]math.Vec4, c.Width*c.Height)
	for row := range c.Height {
		i := row / rowBand
		for col := range c.Width {
			j := (col + colShift) / colBand
			if (i+j)%2 == 0 {
				texels[row*c.Width+col] = color1
			} else {
				texels[row*c.Width+col] = color2
			}
		}
	}
	return texels, nil
}

// Checker returns the texture as an 8-bit image.
func Checker(c Config) (*image.NRGBA, error) {
	texels, err := CheckerTexels(c)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := range c.Height {
		for x := range c.Width {
			img.SetNRGBA(x, y, toNRGBA(texels[y*c.Width+x]))
		}
	}
	return img, nil
}

func toNRGBA(v math.Vec4) color.NRGBA {
	channel := func(f float32) uint8 {
		return uint8(math.Clamp(f, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: channel(v.X), G: channel(v.Y), B: channel(v.Z), A: channel(v.W)}
}
